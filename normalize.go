package irish

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// punctReplacer folds typographic apostrophes and hyphens into the ASCII
// forms used by the elided possessives (m', d') and the t-/n- prefixes.
var punctReplacer = strings.NewReplacer(
	"\u2019", "'", // ’ → '
	"\u2018", "'", // ‘ → '
	"\u02bc", "'", // ʼ → '
	"\u2010", "-", // ‐ → -
	"\u2011", "-", // non-breaking hyphen → -
	"\u00ad", "", // soft hyphen
)

// Normalize returns s in NFC with typographic apostrophes and hyphens
// folded to ASCII. A decomposed "a" + U+0301 becomes "á", so the vowel
// classes see a single rune.
func Normalize(s string) string {
	return punctReplacer.Replace(norm.NFC.String(strings.TrimSpace(s)))
}

// NormalizeKey returns the lexicon lookup key for s: Normalize, then
// lower-case.
func NormalizeKey(s string) string {
	return strings.ToLower(Normalize(s))
}
