package domain

// PartOfSpeech is the canonical grammatical category attached to a vocabulary item.
// Values are lowercase because they are emitted verbatim as item tags.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "noun"
	PartOfSpeechVerb         PartOfSpeech = "verb"
	PartOfSpeechAdjective    PartOfSpeech = "adjective"
	PartOfSpeechAdverb       PartOfSpeech = "adverb"
	PartOfSpeechPronoun      PartOfSpeech = "pronoun"
	PartOfSpeechNumber       PartOfSpeech = "number"
	PartOfSpeechMeasureWord  PartOfSpeech = "measure word"
	PartOfSpeechConjunction  PartOfSpeech = "conjunction"
	PartOfSpeechPreposition  PartOfSpeech = "preposition"
	PartOfSpeechParticle     PartOfSpeech = "particle"
	PartOfSpeechInterjection PartOfSpeech = "interjection"
	PartOfSpeechSuffix       PartOfSpeech = "suffix"
	PartOfSpeechPrefix       PartOfSpeech = "prefix"
	PartOfSpeechPhrase       PartOfSpeech = "phrase"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb,
		PartOfSpeechPronoun, PartOfSpeechNumber, PartOfSpeechMeasureWord,
		PartOfSpeechConjunction, PartOfSpeechPreposition, PartOfSpeechParticle,
		PartOfSpeechInterjection, PartOfSpeechSuffix, PartOfSpeechPrefix, PartOfSpeechPhrase:
		return true
	}
	return false
}

// IsGrammatical reports whether p is a function-word category that earns the
// "grammar" topic tag.
func (p PartOfSpeech) IsGrammatical() bool {
	switch p {
	case PartOfSpeechParticle, PartOfSpeechMeasureWord, PartOfSpeechPrefix,
		PartOfSpeechSuffix, PartOfSpeechConjunction, PartOfSpeechPreposition:
		return true
	}
	return false
}

// LevelAdvanced is the combined 7-9 band. It is kept on VocabItem.Level but
// never emitted as an item or group tag.
const LevelAdvanced = "L7-9"

// Dataset header constants consumed by the study application.
const (
	DatasetKind = "chinese"
	DatasetFrom = "chinese"
	DatasetTo   = "english"
)

// DatasetSearchFields lists the item fields the study app indexes for search.
func DatasetSearchFields() []string {
	return []string{"word", "pinyin", "english"}
}
