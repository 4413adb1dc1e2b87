package irish

import (
	"fmt"
	"slices"
	"strings"
)

// Plural strengths recorded for a noun.
const (
	WeakPlural   = "weak"
	StrongPlural = "strong"
)

// DeclensionRecord holds the known forms of one noun.
type DeclensionRecord struct {
	Gender             Gender
	NominativeSingular string
	GenitiveSingular   string
	NominativePlural   string
	GenitivePlural     string
	// PluralStrength is WeakPlural, StrongPlural or empty.
	PluralStrength string
}

// Validate checks that a genitive plural never appears without a
// nominative plural.
func (r DeclensionRecord) Validate() error {
	if r.GenitivePlural != "" && r.NominativePlural == "" {
		return fmt.Errorf("%w: genitive plural %q without nominative plural", ErrMissingData, r.GenitivePlural)
	}
	return nil
}

// Form returns the record's form for a word-form descriptor.
func (r DeclensionRecord) Form(d Descriptor) string {
	switch d {
	case NominativeSingular:
		return r.NominativeSingular
	case GenitiveSingular:
		return r.GenitiveSingular
	case NominativePlural:
		return r.NominativePlural
	case GenitivePlural:
		return r.GenitivePlural
	case PluralStrengthTag:
		return r.PluralStrength
	default:
		return ""
	}
}

// Our own counts disagree with http://nualeargais.ie/gnag/subst2.htm#oben
// ("the weak plural is almost exclusively 1st and 2nd declension"): a weak
// plural is surprising in these classes, a strong one in nm1.
var (
	weakPluralSurprising   = []Gender{"nm3", "nf4", "nf5"}
	strongPluralSurprising = []Gender{"nm1"}
)

// irregularNouns are flagged irregular whatever their declension.
var irregularNouns = []string{
	// http://nualeargais.ie/gnag/0dekl.htm
	"bean", "deirfiúr", "siúr", "dia", "lá", "leaba", "mí", "olann", "talamh",
	// https://en.wikipedia.org/wiki/Irish_declension
	"deoch", "muir", "teach",
}

// IsIrregular reports whether word is one of the known irregular nouns.
func IsIrregular(word string) bool {
	return slices.Contains(irregularNouns, Normalize(word))
}

// DeclensionClass holds the two flags derived from a record.
type DeclensionClass struct {
	Gender Gender
	// AnomalousPluralStrength is set for a weak plural in nm3/nf4/nf5 or a
	// strong plural in nm1.
	AnomalousPluralStrength bool
	// Irregular is set when the headword is a known irregular noun.
	Irregular bool
}

// ClassifyDeclension computes the plural-strength anomaly and irregularity
// flags for word. gender overrides rec.Gender when set; with neither the
// call fails with ErrMissingData.
func ClassifyDeclension(word string, rec DeclensionRecord, gender Gender) (DeclensionClass, error) {
	if gender == "" {
		gender = rec.Gender
	}
	if gender == "" {
		return DeclensionClass{}, fmt.Errorf("%w: need a gender to classify %q", ErrMissingData, word)
	}
	if err := rec.Validate(); err != nil {
		return DeclensionClass{}, err
	}

	c := DeclensionClass{Gender: gender}
	if rec.NominativePlural != "" {
		c.AnomalousPluralStrength =
			(rec.PluralStrength == WeakPlural && slices.Contains(weakPluralSurprising, gender)) ||
				(rec.PluralStrength == StrongPlural && slices.Contains(strongPluralSurprising, gender))
	}
	c.Irregular = rec.NominativeSingular != "" && IsIrregular(word)
	return c, nil
}

// DeclensionSummary is the annotated declension of one noun, split into
// the parts a renderer lays out.
type DeclensionSummary struct {
	// Forms is "nominative singular[/nominative plural]".
	Forms string
	// Description names gender, declension, plural strength and flags.
	Description string
	// Genitive is "genitive singular[/genitive plural]".
	Genitive string
	// Class is the two-letter gender prefix; Declension what follows it.
	Class      string
	Declension string
}

// Empty reports a summary with no forms, produced when either singular
// form is missing.
func (s DeclensionSummary) Empty() bool { return s.Forms == "" }

// FormatDeclension builds the annotated declension summary for word.
// Forms in rec may already carry markers (e.g. a gender hint on the
// nominative singular) and are passed through as they are.
func FormatDeclension(word string, rec DeclensionRecord, gender Gender) (DeclensionSummary, error) {
	c, err := ClassifyDeclension(word, rec, gender)
	if err != nil {
		return DeclensionSummary{}, err
	}
	gender = c.Gender

	var desc strings.Builder
	desc.WriteString(strings.NewReplacer(
		"nf", "n"+emphasize("f"),
		"nm", "n"+emphasize("m"),
	).Replace(string(gender)))
	if rec.NominativePlural != "" {
		if c.AnomalousPluralStrength {
			desc.WriteString(" " + Wrap(MarkAnomaly, "but"))
		}
		switch rec.PluralStrength {
		case WeakPlural:
			desc.WriteString(" weak plural")
		case StrongPlural:
			desc.WriteString(" strong plural")
		}
	}
	if c.Irregular {
		desc.WriteString(", " + Wrap(MarkIrregular, "irregular"))
	}

	s := DeclensionSummary{Description: desc.String()}
	s.Class, s.Declension = splitGender(gender)
	if rec.NominativeSingular == "" || rec.GenitiveSingular == "" {
		return s, nil
	}
	s.Forms = joinForms(rec.NominativeSingular, rec.NominativePlural)
	s.Genitive = joinForms(rec.GenitiveSingular, rec.GenitivePlural)
	return s, nil
}

func joinForms(singular, plural string) string {
	if plural == "" {
		return singular
	}
	return singular + "/" + plural
}

func splitGender(g Gender) (string, string) {
	if len(g) < 2 {
		return string(g), ""
	}
	return string(g[:2]), string(g[2:])
}
