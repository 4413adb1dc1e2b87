package irish

import (
	"fmt"
	"strings"
)

// Particle is a possessive particle that lenites the following noun.
type Particle string

const (
	My   Particle = "mo"
	Your Particle = "do"
)

// Possessive returns the possessive construction for word.
//
// Before a vowel, or a word whose lenited form starts with "fh", the
// particle elides to its first letter and an apostrophe and is joined to
// the unlenited word: the elision itself carries the mutation, so m'athair
// and m'fear never show an inserted h. Otherwise the full particle precedes
// the lenited word.
func Possessive(word string, p Particle, mode Mode) (string, error) {
	if p == "" {
		return "", fmt.Errorf("%w: empty possessive particle", ErrInvalidInput)
	}
	w, err := NewWord(word)
	if err != nil {
		return "", err
	}
	lenited := lenite(w, mode)
	if w.StartsWithVowel() || strings.HasPrefix(Strip(lenited), "fh") {
		return string([]rune(string(p))[0]) + "'" + w.String(), nil
	}
	return string(p) + " " + lenited, nil
}

// PossessiveMo returns the "my" construction for word.
func PossessiveMo(word string, mode Mode) (string, error) {
	return Possessive(word, My, mode)
}

// PossessiveDo returns the "your" construction for word.
func PossessiveDo(word string, mode Mode) (string, error) {
	return Possessive(word, Your, mode)
}
