// Package pinyin converts numbered pinyin (as found in CC-CEDICT) into
// tone-marked pinyin and back to bare ASCII for comparisons.
package pinyin

import (
	"strings"
	"unicode"
)

// toneMarks maps a base vowel to its marked forms for tones 1 through 4.
var toneMarks = map[rune][4]rune{
	'a':      {'\u0101', '\u00e1', '\u01ce', '\u00e0'}, // ā á ǎ à
	'e':      {'\u0113', '\u00e9', '\u011b', '\u00e8'}, // ē é ě è
	'i':      {'\u012b', '\u00ed', '\u01d0', '\u00ec'}, // ī í ǐ ì
	'o':      {'\u014d', '\u00f3', '\u01d2', '\u00f2'}, // ō ó ǒ ò
	'u':      {'\u016b', '\u00fa', '\u01d4', '\u00f9'}, // ū ú ǔ ù
	'\u00fc': {'\u01d6', '\u01d8', '\u01da', '\u01dc'}, // ǖ ǘ ǚ ǜ
}

// umlautReplacer rewrites the dictionary's ASCII spellings of ü.
var umlautReplacer = strings.NewReplacer(
	"u:", "ü",
	"U:", "Ü",
	"v", "ü",
)

// NormalizeUmlaut rewrites "u:" and "v" to ü.
func NormalizeUmlaut(s string) string {
	return umlautReplacer.Replace(s)
}

// RenderSyllable puts the diacritic for tone on the nucleus vowel of base.
// Tone 5 and tones <= 0 are neutral and return base unchanged. A syllable
// with no vowel is returned without a mark.
func RenderSyllable(base string, tone int) string {
	if tone <= 0 || tone >= 5 {
		return base
	}

	runes := []rune(NormalizeUmlaut(base))
	idx := nucleusIndex(runes)
	if idx < 0 {
		return string(runes)
	}

	orig := runes[idx]
	marks, ok := toneMarks[unicode.ToLower(orig)]
	if !ok {
		return string(runes)
	}

	marked := marks[tone-1]
	if unicode.IsUpper(orig) {
		marked = unicode.ToUpper(marked)
	}
	runes[idx] = marked
	return string(runes)
}

// nucleusIndex returns the rune index that carries the tone mark, or -1.
// Priority: a, then e, then o, then the u of "iu" or the i of "ui", then the
// last vowel in the syllable.
func nucleusIndex(runes []rune) int {
	lower := make([]rune, len(runes))
	for i, r := range runes {
		lower[i] = unicode.ToLower(r)
	}

	for _, v := range []rune{'a', 'e', 'o'} {
		if i := indexRune(lower, v); i >= 0 {
			return i
		}
	}

	s := string(lower)
	if strings.Contains(s, "iu") {
		return indexRune(lower, 'u')
	}
	if strings.Contains(s, "ui") {
		return indexRune(lower, 'i')
	}

	for i := len(lower) - 1; i >= 0; i-- {
		if _, ok := toneMarks[lower[i]]; ok {
			return i
		}
	}
	return -1
}

func indexRune(runes []rune, r rune) int {
	for i, c := range runes {
		if c == r {
			return i
		}
	}
	return -1
}

// Convert turns a numbered pinyin string such as "zhong1 guo2" into
// "zhōng guó". A trailing "r" or "r5" token is attached to the previous
// syllable as erhua. Syllables without a trailing tone digit pass through
// with only the umlaut normalized. Neutral-tone syllables get the umlaut
// rewrite too.
func Convert(numeric string) string {
	parts := strings.Fields(numeric)

	erhua := false
	if n := len(parts); n >= 2 && (parts[n-1] == "r" || parts[n-1] == "r5") {
		erhua = true
		parts = parts[:n-1]
	}

	out := make([]string, len(parts))
	for i, p := range parts {
		base, tone, ok := splitTone(p)
		var syl string
		if ok {
			syl = RenderSyllable(NormalizeUmlaut(base), tone)
		} else {
			syl = NormalizeUmlaut(p)
		}
		if erhua && i == len(parts)-1 {
			syl += "r"
		}
		out[i] = syl
	}
	return strings.Join(out, " ")
}

// splitTone splits "guo2" into ("guo", 2). ok is false when the syllable does
// not end in a digit 1-5.
func splitTone(syllable string) (string, int, bool) {
	if syllable == "" {
		return syllable, 0, false
	}
	last := syllable[len(syllable)-1]
	if last < '1' || last > '5' {
		return syllable, 0, false
	}
	return syllable[:len(syllable)-1], int(last - '0'), true
}
