// Package gloss turns verbose CC-CEDICT definition text into short English
// glosses suitable for flash cards.
package gloss

import (
	"regexp"
	"strings"

	"github.com/anukauchika/hskvocab/internal/domain"
)

var (
	bracketRe      = regexp.MustCompile(`\[.*?\]`)
	abbrRe         = regexp.MustCompile(`(?i)\babbr\.?\s*for\b.*`)
	asInRe         = regexp.MustCompile(`(?i)\bas in\b.*`)
	collRe         = regexp.MustCompile(`(?i)\bcoll\.?\b`)
	colloquialRe   = regexp.MustCompile(`(?i)\bcolloquial\b`)
	boundFormRe    = regexp.MustCompile(`(?i)\bbound form\b`)
	leadingPunctRe = regexp.MustCompile(`^[^\p{L}\p{N}_]+\s*`)
	multiSpaceRe   = regexp.MustCompile(`\s{2,}`)
)

// boilerplate is removed in order; abbreviation and "as in" clauses take the
// rest of the segment with them.
var boilerplate = []*regexp.Regexp{abbrRe, asInRe, collRe, colloquialRe, boundFormRe}

// CleanSegment scrubs one semicolon-delimited piece of a definition and
// applies the canonical rewrites. An empty result means the segment carries
// nothing worth showing and should be discarded.
func CleanSegment(segment string, pos domain.PartOfSpeech) string {
	seg := scrub(segment)
	if seg == "" {
		return ""
	}
	return canonicalize(seg, pos)
}

// scrub removes annotation markup and boilerplate phrases.
func scrub(seg string) string {
	seg = strings.NewReplacer("(", "", ")", "").Replace(seg)
	seg = strings.TrimSpace(seg)
	seg = strings.TrimSpace(bracketRe.ReplaceAllString(seg, ""))

	for _, re := range boilerplate {
		seg = strings.TrimSpace(re.ReplaceAllString(seg, ""))
	}

	seg = strings.TrimSpace(leadingPunctRe.ReplaceAllString(seg, ""))
	seg = multiSpaceRe.ReplaceAllString(seg, " ")
	return strings.Trim(seg, " ;,-")
}
