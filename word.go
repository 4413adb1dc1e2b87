package irish

import (
	"fmt"
	"strings"
)

const (
	lowerVowels   = "aeiouáéíóú"
	upperVowels   = "AEIOUÁÉÍÓÚ"
	slenderVowels = "eiéí"
	lenitable     = "bcdfgmpst"
)

// Word is an immutable word in Irish orthography. The zero value is not
// usable; construct with NewWord.
type Word struct {
	s     string
	runes []rune
}

// NewWord normalizes s and returns it as a Word. An empty word fails with
// ErrInvalidInput.
func NewWord(s string) (Word, error) {
	s = Normalize(s)
	if s == "" {
		return Word{}, fmt.Errorf("%w: empty word", ErrInvalidInput)
	}
	return Word{s: s, runes: []rune(s)}, nil
}

// String returns the normalized word.
func (w Word) String() string { return w.s }

// Len returns the number of characters in the word.
func (w Word) Len() int { return len(w.runes) }

// Runes returns a copy of the word's characters.
func (w Word) Runes() []rune {
	out := make([]rune, len(w.runes))
	copy(out, w.runes)
	return out
}

// First returns the initial character.
func (w Word) First() rune { return w.runes[0] }

// Second returns the second character, if any.
func (w Word) Second() (rune, bool) {
	if len(w.runes) < 2 {
		return 0, false
	}
	return w.runes[1], true
}

// Rest returns everything after the initial character.
func (w Word) Rest() string { return string(w.runes[1:]) }

// StartsWithS reports a lower-case initial s.
func (w Word) StartsWithS() bool { return w.runes[0] == 's' }

// StartsWithVowel reports an initial vowel of either case, accented or not.
func (w Word) StartsWithVowel() bool {
	return isVowel(w.runes[0]) || w.StartsWithUppercaseVowel()
}

// StartsWithUppercaseVowel reports an initial capital vowel.
func (w Word) StartsWithUppercaseVowel() bool {
	return strings.ContainsRune(upperVowels, w.runes[0])
}

// StartsWithDOrT reports a lower-case initial d or t.
func (w Word) StartsWithDOrT() bool {
	return w.runes[0] == 'd' || w.runes[0] == 't'
}

// StartsWithConsonant holds when none of StartsWithS, StartsWithVowel and
// StartsWithDOrT hold.
func (w Word) StartsWithConsonant() bool {
	return !w.StartsWithS() && !w.StartsWithVowel() && !w.StartsWithDOrT()
}

// EndsWithVowel reports a lower-case final vowel.
func (w Word) EndsWithVowel() bool {
	return isVowel(w.runes[len(w.runes)-1])
}

func isVowel(r rune) bool { return strings.ContainsRune(lowerVowels, r) }

func isSlender(r rune) bool { return strings.ContainsRune(slenderVowels, r) }
