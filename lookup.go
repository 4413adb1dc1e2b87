package irish

import "strings"

// Mutation names the initial change undone to reach a headword.
type Mutation string

const (
	MutationNone     Mutation = ""
	MutationLenition Mutation = "lenition"
	MutationEclipsis Mutation = "eclipsis"
	MutationTPrefix  Mutation = "t-prefix"
	MutationHPrefix  Mutation = "h-prefix"
	MutationNPrefix  Mutation = "n-prefix"
)

// Match is a lexicon noun reached from a possibly mutated form.
type Match struct {
	Noun     *Noun
	Mutation Mutation
}

// candidate is a possible unmutated spelling of a form.
type candidate struct {
	key      string
	mutation Mutation
}

// Lookup finds the nouns a form may belong to. An exact headword match
// comes first; then each initial mutation the form may carry is undone in
// turn. Nothing is returned for an empty form.
func (l *Lexicon) Lookup(form string) []Match {
	w, err := NewWord(form)
	if err != nil {
		return nil
	}

	var out []Match
	seen := make(map[*Noun]bool)
	for _, c := range demutate(w) {
		n, ok := l.nouns[c.key]
		if !ok || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, Match{Noun: n, Mutation: c.mutation})
	}
	return out
}

// demutate lists the exact key followed by every spelling the form could
// have had before an initial mutation.
func demutate(w Word) []candidate {
	key := strings.ToLower(w.String())
	runes := []rune(key)
	out := []candidate{{key, MutationNone}}

	if len(runes) < 2 {
		return out
	}

	// t or n before a capital vowel: tAthair, nÉireann
	if strings.ContainsRune(upperVowels, w.Runes()[1]) {
		switch runes[0] {
		case 't':
			out = append(out, candidate{string(runes[1:]), MutationTPrefix})
		case 'n':
			out = append(out, candidate{string(runes[1:]), MutationNPrefix})
		}
	}

	// hyphenated t-/n- before a vowel: t-athair, n-éan
	if len(runes) > 2 && runes[1] == '-' && isVowel(runes[2]) {
		switch runes[0] {
		case 't':
			out = append(out, candidate{string(runes[2:]), MutationTPrefix})
		case 'n':
			out = append(out, candidate{string(runes[2:]), MutationNPrefix})
		}
	}

	// t before s: tsráid
	if runes[0] == 't' && runes[1] == 's' {
		out = append(out, candidate{string(runes[1:]), MutationTPrefix})
	}

	// h before a vowel: heaglais
	if runes[0] == 'h' && isVowel(runes[1]) {
		out = append(out, candidate{string(runes[1:]), MutationHPrefix})
	}

	// eclipsis: bhfear, gcat, ndoras
	for _, initial := range "bcdfgpt" {
		if prefix := eclipses[initial]; strings.HasPrefix(key, prefix+string(initial)) {
			out = append(out, candidate{key[len(prefix):], MutationEclipsis})
		}
	}

	// lenition: bhád, mhadra
	if runes[1] == 'h' && strings.ContainsRune(lenitable, runes[0]) && len(runes) > 2 {
		out = append(out, candidate{string(runes[0]) + string(runes[2:]), MutationLenition})
	}
	return out
}
