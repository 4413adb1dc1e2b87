package irish

import "strings"

// Noun is a lexicon entry for one noun.
type Noun struct {
	// Word is the headword as written in the data file.
	Word string
	// Key is NormalizeKey(Word).
	Key string
	// Record holds the declined forms and gender.
	Record DeclensionRecord
}

// Adjective is a lexicon entry for one adjective.
type Adjective struct {
	Word     string
	Key      string
	Variants AdjectiveVariants
}

// newNoun parses a line from nouns.txt.
// Line format: word|gender|nom sg|gen sg|nom pl|gen pl|strength
// Trailing fields may be omitted; an empty nominative singular defaults
// to the headword.
func newNoun(line string) *Noun {
	parts := fields(line, 7)
	if parts == nil || parts[0] == "" {
		return nil
	}
	n := &Noun{
		Word: Normalize(parts[0]),
		Record: DeclensionRecord{
			Gender:             Gender(strings.TrimSpace(parts[1])),
			NominativeSingular: Normalize(parts[2]),
			GenitiveSingular:   Normalize(parts[3]),
			NominativePlural:   Normalize(parts[4]),
			GenitivePlural:     Normalize(parts[5]),
			PluralStrength:     strings.ToLower(strings.TrimSpace(parts[6])),
		},
	}
	n.Key = NormalizeKey(n.Word)
	if n.Record.NominativeSingular == "" {
		n.Record.NominativeSingular = n.Word
	}
	return n
}

// newAdjective parses a line from adjectives.txt.
// Line format: word|masc|fem|pl|pl weak|comparative|superlative
func newAdjective(line string) *Adjective {
	parts := fields(line, 7)
	if parts == nil || parts[0] == "" {
		return nil
	}
	a := &Adjective{
		Word: Normalize(parts[0]),
		Variants: AdjectiveVariants{
			SingularNominativeMasc:         Normalize(parts[1]),
			SingularNominativeFem:          Normalize(parts[2]),
			PluralNominative:               Normalize(parts[3]),
			PluralNominativeWeakConsonants: Normalize(parts[4]),
			Comparative:                    Normalize(parts[5]),
			Superlative:                    Normalize(parts[6]),
		},
	}
	a.Key = NormalizeKey(a.Word)
	if a.Variants.SingularNominativeMasc == "" {
		a.Variants.SingularNominativeMasc = a.Word
	}
	if a.Variants.SingularNominativeFem == "" {
		a.Variants.SingularNominativeFem = a.Variants.SingularNominativeMasc
	}
	return a
}

// fields splits a pipe-separated line into exactly n fields, padding with
// empty strings. Lines with fewer than two fields return nil.
func fields(line string, n int) []string {
	parts := strings.Split(line, "|")
	if len(parts) < 2 {
		return nil
	}
	out := make([]string, n)
	copy(out, parts)
	return out
}
