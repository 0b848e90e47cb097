package pinyin

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripTones removes every combining mark from s, so "lǜ" becomes "lu" and
// "zhōng" becomes "zhong".
func StripTones(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Compact returns the tone-stripped, space-free, lower-cased form of s.
// It is the key used to recognise a gloss that only transliterates the word.
func Compact(s string) string {
	return strings.ToLower(strings.ReplaceAll(StripTones(s), " ", ""))
}

// Fold removes spaces and lower-cases s while keeping tone marks. Two
// spellings that fold equal are the same pronunciation.
func Fold(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", ""))
}
