package gloss

import (
	"strings"

	"github.com/anukauchika/hskvocab/internal/domain"
)

// Preferred picks the segment that best fits pos from already cleaned
// segments. ok is false when no segment is preferred and the caller should
// fall back to the first one.
func Preferred(segments []string, pos domain.PartOfSpeech) (string, bool) {
	var match func(lower string) bool

	switch pos {
	case domain.PartOfSpeechPrefix:
		match = func(l string) bool {
			return strings.Contains(l, "ordinal") || strings.Contains(l, "prefix")
		}
	case domain.PartOfSpeechMeasureWord:
		match = func(l string) bool {
			return strings.Contains(l, "measure word") || strings.Contains(l, "classifier") ||
				strings.Contains(l, "o'clock")
		}
	case domain.PartOfSpeechParticle:
		match = func(l string) bool { return strings.Contains(l, "particle") }
	case domain.PartOfSpeechNoun:
		match = func(l string) bool { return l == "shop" || l == "store" }
	default:
		return "", false
	}

	for _, s := range segments {
		if match(strings.ToLower(s)) {
			return s, true
		}
	}
	return "", false
}
