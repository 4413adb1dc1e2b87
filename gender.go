package irish

import "strings"

// The ending tables are scanned in declared order and the first suffix
// match wins, so an earlier short ending shadows a later longer one: "is"
// always matches before "lis".

// feminineEndings signal a feminine noun. The number on each row is
// count(nf) / (count(nf) + count(nm)) over the top 6,500 nouns.
var feminineEndings = []string{
	"cht", // 0.91, masculine on short words
	// more nf2 than nf3, unlike http://nualeargais.ie/foghlaim/nouns.php
	"irt", // 0.97
	"úil", // 1.0, 6 in sample
	// úint/áint per nualeargais, plus tairiscint/léirthuiscint/míthuiscint (nf3);
	// one mismatch: sáirsint nm4
	"int", // 0.93
	"ail", // 0.88, Earcail/Uncail are masculine

	// nf2 according to nualeargais
	"lann", // 0.89, exceptions: salann, anlann (nm1)
	"eog",  // 1.0
	"óg",   // 0.98, exception: dallamullóg (nm4)

	// http://web.archive.org/web/20041022082050/https://www.rte.ie/tv/turasteanga/tt.pdf
	"íl",   // 1.0, (a)íl
	"áil",  // 1.0, (e)áil, nothing in sample
	"ailt", // 1.0, (e)ailt
	"ís",   // 0.85, exceptions: giúistís, Cincís
	"is",   // 0.92, exception: faraois

	// https://thegeekygaeilgeoir.wordpress.com/2017/08/28/making-sense-of-irish-gender/
	"lis", // 1.0, 3 in sample
}

// masculineEndings signal a masculine noun.
//
// Abstract nouns in -e and -í lean declension 4 but split between the
// genders (e: 0.41, í: 0.18) and are too short to highlight, so neither
// table lists them.
var masculineEndings = []string{
	"ín", // 0.9, diminutive, turns feminine words masculine

	// professions
	"éir",  // 0.74, exceptions are short: réir/spéir/comhréir/cléir/mistéir, céir
	"óir",  // 0.93, exceptions: glóir, tóir/onóir/éagóir/altóir/seanmóir
	"úir",  // 1.0
	"aeir", // 1.0

	"ire", // 0.83, (a)ire
	"éad", // 0.9, sample of 29
	"adh", // 1.0, (e)adh
	"éal", // 1.0
	"éar", // 1.0, sample of 21
	"ún",  // 1.0
	"úr",  // 0.88, exceptions: deirfiúr, siúr

	"eir", // 0.5, geir vs carraeir, kept alongside éir
	"án",  // 0.95
	"oir", // 0.90, exceptions are short: treoir, cathaoir, deoir, coir, aoir, beoir
	"uir", // 1.0, sample of 1
	"ste", // 0.82, exceptions: aiste, timpiste, tubaiste, biaiste
}

// PredictionSource names the rule that produced a gender prediction.
type PredictionSource int

const (
	// SourceNone means no rule has run.
	SourceNone PredictionSource = iota
	// SourceFeminineEnding is a match in the feminine ending table.
	SourceFeminineEnding
	// SourceMasculineEnding is a match in the masculine ending table.
	SourceMasculineEnding
	// SourceFinalVowel is a vowel-final word: no signal.
	SourceFinalVowel
	// SourceSlender is a final consonant made slender by its vowel.
	SourceSlender
	// SourceBroad is a broad final consonant: weak evidence, not marked.
	SourceBroad
	// SourceUndetermined means no determining vowel was found.
	SourceUndetermined
)

func (s PredictionSource) String() string {
	switch s {
	case SourceFeminineEnding:
		return "feminine-ending"
	case SourceMasculineEnding:
		return "masculine-ending"
	case SourceFinalVowel:
		return "final-vowel"
	case SourceSlender:
		return "slender"
	case SourceBroad:
		return "broad"
	case SourceUndetermined:
		return "undetermined"
	default:
		return "none"
	}
}

// GenderPrediction is a gender hint for a singular noun.
type GenderPrediction struct {
	// Word is the normalized input.
	Word string
	// Annotated is Word with the evidence span marked, or Word itself when
	// no annotation applies.
	Annotated string
	// Source is the rule that decided the outcome.
	Source PredictionSource
	// Ending is the marked span: the matched suffix or the slender vowel.
	Ending string
	// Agrees reports that the evidence matches the supplied gender.
	Agrees bool
}

// Found reports whether the prediction marks any span.
func (p GenderPrediction) Found() bool { return p.Ending != "" }

// Err returns ErrAmbiguousClassification when no determining vowel was
// found, nil otherwise.
func (p GenderPrediction) Err() error {
	if p.Source == SourceUndetermined {
		return ErrAmbiguousClassification
	}
	return nil
}

// PredictGender marks the part of a singular noun that signals its gender.
// Evidence agreeing with gender is emphasized; contrary evidence is
// underlined. The ending tables are tried first, then the quality of the
// final consonant: a slender one (11x more likely feminine) is marked, a
// broad one is not.
func PredictGender(singular string, gender Gender) (GenderPrediction, error) {
	w, err := NewWord(singular)
	if err != nil {
		return GenderPrediction{}, err
	}
	s := w.String()
	p := GenderPrediction{Word: s, Annotated: s}

	if e, ok := matchEnding(w, feminineEndings); ok {
		return markEnding(p, w, e, SourceFeminineEnding, gender.Feminine()), nil
	}
	if e, ok := matchEnding(w, masculineEndings); ok {
		return markEnding(p, w, e, SourceMasculineEnding, gender.Masculine()), nil
	}

	// probably declension 4; the consonant before the final vowel shows no
	// gender pattern either way
	if w.EndsWithVowel() {
		p.Source = SourceFinalVowel
		return p, nil
	}

	pos, ok := determiningVowel(w)
	if !ok {
		p.Source = SourceUndetermined
		return p, nil
	}
	runes := w.Runes()
	if !isSlender(runes[pos]) {
		p.Source = SourceBroad
		return p, nil
	}

	p.Source = SourceSlender
	p.Ending = string(runes[pos])
	p.Agrees = gender.Feminine()
	mark := contrary
	if p.Agrees {
		mark = emphasize
	}
	p.Annotated = string(runes[:pos]) + mark(p.Ending) + string(runes[pos+1:])
	return p, nil
}

func matchEnding(w Word, table []string) (string, bool) {
	for _, suffix := range table {
		if strings.HasSuffix(w.String(), suffix) {
			return suffix, true
		}
	}
	return "", false
}

func markEnding(p GenderPrediction, w Word, suffix string, src PredictionSource, agrees bool) GenderPrediction {
	runes := w.Runes()
	stem := string(runes[:len(runes)-len([]rune(suffix))])
	p.Source = src
	p.Ending = suffix
	p.Agrees = agrees
	if agrees {
		p.Annotated = stem + emphasize(suffix)
	} else {
		p.Annotated = stem + contrary(suffix)
	}
	return p
}

// determiningVowel walks back from the second-to-last character past
// consonants and returns the index of the nearest vowel. The walk stops
// at the first character; ok is false when no vowel was reached.
func determiningVowel(w Word) (pos int, ok bool) {
	runes := w.Runes()
	for i := len(runes) - 2; i >= 0; i-- {
		if isVowel(runes[i]) {
			return i, true
		}
	}
	return 0, false
}
