package irish

import "strings"

// Gender is a grammatical gender code: "nf" or "nm", optionally followed
// by a declension number (1-5), e.g. "nm1", "nf2".
type Gender string

const (
	Feminine  Gender = "nf"
	Masculine Gender = "nm"
)

// Feminine reports an nf prefix.
func (g Gender) Feminine() bool { return strings.HasPrefix(string(g), string(Feminine)) }

// Masculine reports an nm prefix.
func (g Gender) Masculine() bool { return strings.HasPrefix(string(g), string(Masculine)) }

// Known reports whether the code has an nf or nm prefix.
func (g Gender) Known() bool { return g.Feminine() || g.Masculine() }

// Class returns the two-letter gender prefix, or "" when unknown.
func (g Gender) Class() string {
	if !g.Known() {
		return ""
	}
	return string(g[:2])
}

// Declension returns whatever follows the gender prefix, usually the
// declension number.
func (g Gender) Declension() string {
	if !g.Known() {
		return ""
	}
	return string(g[2:])
}

// Descriptor is a free-form case/number description such as
// "nominative singular" or "genitive plural".
type Descriptor string

const (
	NominativeSingular Descriptor = "nominative singular"
	GenitiveSingular   Descriptor = "genitive singular"
	NominativePlural   Descriptor = "nominative plural"
	GenitivePlural     Descriptor = "genitive plural"
	PluralStrengthTag  Descriptor = "plural strength"
)

// Descriptors lists the four word-form descriptors in table order.
var Descriptors = []Descriptor{
	NominativeSingular,
	GenitiveSingular,
	NominativePlural,
	GenitivePlural,
}

func (d Descriptor) Nominative() bool { return strings.Contains(string(d), "nominative") }

func (d Descriptor) Genitive() bool { return strings.Contains(string(d), "genitive") }

// Plural reports whether "plural" occurs anywhere in the descriptor.
func (d Descriptor) Plural() bool { return strings.Contains(string(d), "plural") }

// EndsPlural reports a descriptor ending in " plural", which takes "na".
func (d Descriptor) EndsPlural() bool { return strings.HasSuffix(string(d), " plural") }

// PluralStrength reports the categorical "plural strength" descriptor,
// which names a record field rather than a word form.
func (d Descriptor) PluralStrength() bool { return d == PluralStrengthTag }

// NounAnalysis is everything the lexicon can say about one noun.
type NounAnalysis struct {
	// Word is the lexicon headword.
	Word string
	// Gender is the recorded gender code.
	Gender Gender
	// Prediction is the gender hint for the nominative singular.
	Prediction GenderPrediction
	// Declension is the annotated declension summary, with the gender hint
	// applied to the nominative singular.
	Declension DeclensionSummary
	// Class holds the plural-strength and irregularity flags.
	Class DeclensionClass
	// Articles maps each word-form descriptor to its article form.
	Articles *ArticleTable
	// My and Your are the "mo" and "do" possessives.
	My   string
	Your string
}
