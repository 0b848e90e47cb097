// Package sense ranks the dictionary senses of a word against the syllabus
// reading and part of speech, follows variant cross-references, and picks a
// short English gloss.
package sense

import (
	"regexp"
	"strings"
)

// crossRefPrefixes mark definition lines that point at another entry
// instead of defining the word. Matching is case-sensitive.
var crossRefPrefixes = []string{
	"CL:",
	"variant of",
	"old variant of",
	"erhua variant of",
	"see ",
}

var variantRe = regexp.MustCompile(`(?i)(?:erhua variant of|variant of|old variant of)\s+([^\[]+)\[`)

// isCrossRefLine reports whether a single definition line is a pointer.
func isCrossRefLine(line string) bool {
	for _, p := range crossRefPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// IsCrossReference reports whether defs only point at other entries.
// An empty definition list counts as a cross-reference.
func IsCrossReference(defs []string) bool {
	for _, d := range defs {
		if !isCrossRefLine(d) {
			return false
		}
	}
	return true
}

// VariantTarget extracts the headword named by the first "variant of X[...]"
// definition. For "variant of 妳|你[ni3]" the simplified form after the bar
// is returned.
func VariantTarget(defs []string) (string, bool) {
	for _, d := range defs {
		m := variantRe.FindStringSubmatch(d)
		if m == nil {
			continue
		}
		target := strings.TrimSpace(m[1])
		if _, simplified, ok := strings.Cut(target, "|"); ok {
			target = simplified
		}
		return target, target != ""
	}
	return "", false
}
