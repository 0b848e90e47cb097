package gloss

import (
	"regexp"
	"strings"

	"github.com/anukauchika/hskvocab/internal/domain"
)

// rule rewrites a scrubbed segment. lower is strings.ToLower(seg).
type rule struct {
	name  string
	apply func(seg, lower string, pos domain.PartOfSpeech) (string, bool)
}

// rules are evaluated in order; the first rule that applies wins.
var rules = []rule{
	{"o'clock", func(_, lower string, _ domain.PartOfSpeech) (string, bool) {
		return "o'clock", strings.Contains(lower, "o'clock")
	}},
	{"ordinal prefix", func(_, lower string, pos domain.PartOfSpeech) (string, bool) {
		ok := pos == domain.PartOfSpeechPrefix &&
			(strings.Contains(lower, "ordinal") || strings.Contains(lower, "prefix"))
		return "ordinal prefix", ok
	}},
	{"possessive particle", containsRule("possessive particle")},
	{"modal particle", containsRule("modal particle")},
	{"particle", func(_, lower string, pos domain.PartOfSpeech) (string, bool) {
		return "particle", pos == domain.PartOfSpeechParticle && strings.Contains(lower, "particle")
	}},
	{"measure word", measureWordRule},
	{"steamed bun", func(_, lower string, _ domain.PartOfSpeech) (string, bool) {
		ok := strings.Contains(lower, "baozi") ||
			(strings.Contains(lower, "bao") && strings.Contains(lower, "bun"))
		return "steamed stuffed bun", ok
	}},
	{"shop or store", shopRule},
}

// containsRule returns phrase itself when the segment mentions it.
func containsRule(phrase string) func(string, string, domain.PartOfSpeech) (string, bool) {
	return func(_, lower string, _ domain.PartOfSpeech) (string, bool) {
		return phrase, strings.Contains(lower, phrase)
	}
}

var classifierRe = regexp.MustCompile(`(?i)(?:classifier|measure word) for`)

// measureWordRule rewrites "classifier for books, magazines etc" to
// "measure word for books". The object keeps its original case. An empty
// object lets later rules run.
func measureWordRule(seg, _ string, _ domain.PartOfSpeech) (string, bool) {
	loc := classifierRe.FindStringIndex(seg)
	if loc == nil {
		return "", false
	}

	object := seg[loc[1]:]
	object, _, _ = strings.Cut(object, ",")
	object, _, _ = strings.Cut(object, "etc")
	object = strings.TrimSpace(object)
	if object == "" {
		return "", false
	}
	return "measure word for " + object, true
}

// shopRule matches a segment made only of "shop" and "store" items, such as
// "store" or "store, shop", and returns the first item.
func shopRule(_, lower string, _ domain.PartOfSpeech) (string, bool) {
	items := strings.Split(lower, ",")
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
		if items[i] != "shop" && items[i] != "store" {
			return "", false
		}
	}
	return items[0], true
}

func canonicalize(seg string, pos domain.PartOfSpeech) string {
	lower := strings.ToLower(seg)
	for _, r := range rules {
		if out, ok := r.apply(seg, lower, pos); ok {
			return out
		}
	}
	return seg
}
