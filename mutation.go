package irish

import "strings"

// eclipses maps an initial consonant to the letters eclipsis prefixes.
// See http://www.nualeargais.ie/gnag/gram.htm?1dekl.htm
var eclipses = map[rune]string{
	'b': "m",
	'c': "g",
	'd': "n",
	'f': "bh",
	'g': "n",
	'p': "b",
	't': "d",
}

// Eclipse prefixes the eclipsis letters to word when its initial is one of
// b, c, d, f, g, p, t. Other words come back unchanged. In Annotated mode
// only the prefix is marked.
func Eclipse(word string, mode Mode) (string, error) {
	w, err := NewWord(word)
	if err != nil {
		return "", err
	}
	return eclipse(w, mode), nil
}

func eclipse(w Word, mode Mode) string {
	prefix, ok := eclipses[w.First()]
	if !ok {
		return w.String()
	}
	if mode == Annotated {
		prefix = emphasize(prefix)
	}
	return prefix + w.String()
}

// Lenite inserts an h after the initial of word when it is one of
// b, c, d, f, g, m, p, s, t. Other words come back unchanged. In Annotated
// mode only the h is marked.
// See http://www.nualeargais.ie/gnag/lenition.htm
func Lenite(word string, mode Mode) (string, error) {
	w, err := NewWord(word)
	if err != nil {
		return "", err
	}
	return lenite(w, mode), nil
}

func lenite(w Word, mode Mode) string {
	if !strings.ContainsRune(lenitable, w.First()) {
		return w.String()
	}
	h := "h"
	if mode == Annotated {
		h = emphasize(h)
	}
	return string(w.First()) + h + w.Rest()
}
