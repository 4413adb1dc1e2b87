package irish

import (
	"fmt"
	"strings"
	"unicode"
)

// sMutable holds the letters after an initial s that let it take a t prefix.
const sMutable = lowerVowels + "lnr"

// ApplyArticle returns the definite article followed by word, mutated as
// the gender and descriptor require.
// See http://nualeargais.ie/gnag/artikel.htm
//
// The plural-strength descriptor is a formatting request and returns word
// unchanged. A gender without an nf/nm prefix fails with ErrInvalidInput
// whenever the descriptor needs gender to decide the form.
func ApplyArticle(word string, gender Gender, d Descriptor, mode Mode) (string, error) {
	w, err := NewWord(word)
	if err != nil {
		return "", err
	}
	if d.PluralStrength() {
		return w.String(), nil
	}
	if needsGender(d) && !gender.Known() {
		return "", fmt.Errorf("%w: gender %q has no nf/nm prefix for %q", ErrInvalidInput, gender, d)
	}
	return mode.apply(article(gender, d) + agree(w, gender, d)), nil
}

// needsGender reports whether the article or the mutation for d differs
// between feminine and masculine.
func needsGender(d Descriptor) bool {
	return !d.Plural() || (d.Genitive() && !d.EndsPlural())
}

func article(gender Gender, d Descriptor) string {
	switch {
	case d.EndsPlural():
		return "na "
	case d.Genitive() && gender.Feminine():
		return emphasize("na") + " "
	case d.Genitive():
		// marked weak so renderers can leave the singular article unhighlighted
		return Wrap(MarkWeak, "an") + " "
	default:
		return "an "
	}
}

func agree(w Word, gender Gender, d Descriptor) string {
	if d.Plural() {
		return agreePlural(w, d)
	}
	return agreeSingular(w, gender, d)
}

// agreePlural carries no markers: the plural forms are the same for both
// genders.
func agreePlural(w Word, d Descriptor) string {
	switch {
	case w.StartsWithS():
		return w.String()
	case w.StartsWithVowel() && d.Genitive():
		if w.StartsWithUppercaseVowel() {
			return "n" + w.String()
		}
		return "n-" + w.String()
	case w.StartsWithVowel():
		return "h" + w.String()
	case d.Genitive():
		return eclipse(w, Plain)
	default:
		return w.String()
	}
}

func agreeSingular(w Word, gender Gender, d Descriptor) string {
	nf, nm := gender.Feminine(), gender.Masculine()
	nominative, genitive := d.Nominative(), d.Genitive()

	switch {
	case w.StartsWithDOrT():
		return w.String()
	case w.StartsWithS() && secondIn(w, sMutable) && ((nominative && nf) || (genitive && nm)):
		return emphasize("t") + w.String()
	case w.StartsWithVowel() && nf && genitive:
		return emphasize("h") + w.String()
	case w.StartsWithVowel() && nm && nominative:
		if w.StartsWithUppercaseVowel() {
			return emphasize("t") + w.String()
		}
		return emphasize("t") + "-" + w.String()
	case w.StartsWithConsonant() && ((nm && genitive) || (nf && nominative)):
		return lenite(w, Annotated)
	default:
		return w.String()
	}
}

func secondIn(w Word, set string) bool {
	r, ok := w.Second()
	if !ok {
		return false
	}
	return strings.ContainsRune(set, unicode.ToLower(r))
}
