package irish

// AdjectiveVariants holds the known forms of one adjective.
type AdjectiveVariants struct {
	SingularNominativeMasc string
	SingularNominativeFem  string
	PluralNominative       string
	// PluralNominativeWeakConsonants follows a plural ending in a slender
	// consonant, e.g. leabhair fhada.
	PluralNominativeWeakConsonants string
	Comparative                    string
	Superlative                    string
}

// Empty reports a variant set with no forms at all.
func (v AdjectiveVariants) Empty() bool { return v == AdjectiveVariants{} }

// ExampleNouns are the nouns shown in front of each adjective form.
type ExampleNouns struct {
	Neutral             string
	StrongPlural        string
	PluralWeakConsonant string
	Masculine           string
	Feminine            string
}

// DefaultExampleNouns returns rud, rudaí, leabhair, fear and bean.
func DefaultExampleNouns() ExampleNouns {
	return ExampleNouns{
		Neutral:             "rud",
		StrongPlural:        "rudaí",
		PluralWeakConsonant: "leabhair",
		Masculine:           "fear",
		Feminine:            "bean",
	}
}

// AdjectiveLineKind tells the renderer how to style an example line.
type AdjectiveLineKind int

const (
	LineNeutral AdjectiveLineKind = iota
	LineMasculine
	LineFeminine
	LineOther
)

// Class returns the HTML class for the line.
func (k AdjectiveLineKind) Class() string {
	switch k {
	case LineMasculine:
		return "nm-adj"
	case LineFeminine:
		return "nf-adj"
	case LineOther:
		return "ex-adj other"
	default:
		return "ex-adj"
	}
}

// AdjectiveLine is one example: a noun (possibly empty) and an annotated
// adjective form.
type AdjectiveLine struct {
	Kind AdjectiveLineKind
	Noun string
	Form string
}

// AdjectiveExamples is the formatted example set for one adjective.
type AdjectiveExamples struct {
	Adjective string
	Lines     []AdjectiveLine
	// Missing names expected variants that were absent. It is a diagnostic,
	// not an error: the remaining lines are still complete.
	Missing []string
}

// FormatAdjective builds example phrases for adjective from its variants.
// When the masculine and feminine singular forms differ both are shown
// with their example nouns and the feminine lenition h is emphasized;
// otherwise a single neutral example is shown.
func FormatAdjective(adjective string, v AdjectiveVariants, ex ExampleNouns) AdjectiveExamples {
	out := AdjectiveExamples{Adjective: adjective}
	if v.Empty() {
		return out
	}

	if v.SingularNominativeMasc != v.SingularNominativeFem {
		out.Lines = append(out.Lines,
			AdjectiveLine{Kind: LineMasculine, Noun: ex.Masculine, Form: v.SingularNominativeMasc},
			AdjectiveLine{Kind: LineFeminine, Noun: ex.Feminine, Form: markLenition(v.SingularNominativeFem)},
		)
	} else {
		out.Lines = append(out.Lines, AdjectiveLine{Kind: LineNeutral, Noun: ex.Neutral, Form: v.SingularNominativeMasc})
	}

	if v.PluralNominative == "" {
		out.Missing = append(out.Missing, "plural-nominative")
	} else {
		out.Lines = append(out.Lines, AdjectiveLine{Kind: LineNeutral, Noun: ex.StrongPlural, Form: v.PluralNominative})
	}
	if v.PluralNominativeWeakConsonants != "" {
		out.Lines = append(out.Lines, AdjectiveLine{Kind: LineNeutral, Noun: ex.PluralWeakConsonant, Form: v.PluralNominativeWeakConsonants})
	}
	if v.Comparative != "" {
		out.Lines = append(out.Lines, AdjectiveLine{Kind: LineOther, Form: v.Comparative})
	}
	if v.Superlative != "" {
		out.Lines = append(out.Lines, AdjectiveLine{Kind: LineOther, Form: v.Superlative})
	}
	return out
}

// markLenition emphasizes the h of an already lenited form.
func markLenition(form string) string {
	r := []rune(form)
	if len(r) < 2 || r[1] != 'h' {
		return form
	}
	return string(r[0]) + emphasize("h") + string(r[2:])
}
