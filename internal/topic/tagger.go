package topic

import (
	"slices"
	"strings"

	"github.com/anukauchika/hskvocab/internal/domain"
)

const (
	grammarTag = "grammar"
	maxTags    = 2
)

// Tagger matches glosses against an ordered taxonomy.
type Tagger struct {
	categories []Category
}

// NewTagger creates a Tagger. A nil taxonomy means DefaultTaxonomy.
func NewTagger(categories []Category) *Tagger {
	if categories == nil {
		categories = DefaultTaxonomy()
	}
	return &Tagger{categories: categories}
}

var defaultTagger = NewTagger(nil)

// Tags returns up to two topic tags using the default taxonomy.
func Tags(word, english string, pos domain.PartOfSpeech) []string {
	return defaultTagger.Tags(word, english, pos)
}

// Tags returns the first category whose keyword appears in english, followed
// by "grammar" for function-word parts of speech. The word itself is not
// consulted.
func (t *Tagger) Tags(_, english string, pos domain.PartOfSpeech) []string {
	lower := strings.ToLower(english)

	tags := make([]string, 0, maxTags)
	if name, ok := t.match(lower); ok {
		tags = append(tags, name)
	}
	if pos.IsGrammatical() && !slices.Contains(tags, grammarTag) {
		tags = append(tags, grammarTag)
	}
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags
}

func (t *Tagger) match(lower string) (string, bool) {
	for _, c := range t.categories {
		for _, k := range c.Keywords {
			if strings.Contains(lower, k) {
				return c.Name, true
			}
		}
	}
	return "", false
}
