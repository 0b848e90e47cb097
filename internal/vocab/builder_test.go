package vocab

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anukauchika/hskvocab/internal/domain"
	"github.com/anukauchika/hskvocab/internal/sense"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type selectCall struct {
	word      string
	docPinyin string
	pos       domain.PartOfSpeech
}

// mockSelector records calls and answers from a fixed table.
type mockSelector struct {
	results map[string]sense.Result
	calls   []selectCall
}

func (m *mockSelector) Select(word, docPinyin string, pos domain.PartOfSpeech) sense.Result {
	m.calls = append(m.calls, selectCall{word, docPinyin, pos})
	if r, ok := m.results[word]; ok {
		return r
	}
	return sense.Result{Pinyin: docPinyin, English: word}
}

func TestBuilder_Build(t *testing.T) {
	sel := &mockSelector{results: map[string]sense.Result{
		"吃":  {Pinyin: "chī", English: "to eat", Found: true},
		"本":  {Pinyin: "běn", English: "measure word for books", Found: true},
		"妳":  {Pinyin: "nǐ", English: "you", Found: true, Resolved: true},
		"阿姨": {Pinyin: "ā yí", English: "maternal aunt", Found: true},
	}}
	b := NewBuilder(sel, discardLogger())

	rows := []domain.VocabRow{
		{Index: 1, Level: "L1", Word: "吃", Pinyin: "chī", POSRaw: "动"},
		{Index: 2, Level: "L2", Word: "本", Pinyin: "běn", POSRaw: "量、名"},
		{Index: 3, Level: "L1", Word: "妳", Pinyin: "nǐ", POSRaw: "代"},
		{Index: 4, Level: "L3", Word: "龘龘", Pinyin: "dádá", POSRaw: ""},
		{Index: 5, Level: domain.LevelAdvanced, Word: "阿姨", Pinyin: "āyí", POSRaw: "名"},
	}

	items, stats := b.Build(rows)
	require.Len(t, items, len(rows))

	assert.Equal(t, []domain.VocabItem{
		{Level: "L1", Word: "吃", Pinyin: "chī", English: "to eat", Tags: []string{"L1", "verb", "food"}},
		{Level: "L2", Word: "本", Pinyin: "běn", English: "measure word for books", Tags: []string{"L2", "measure word", "object", "grammar"}},
		{Level: "L1", Word: "妳", Pinyin: "nǐ", English: "you", Tags: []string{"L1", "pronoun"}},
		{Level: "L3", Word: "龘龘", Pinyin: "dádá", English: "龘龘", Tags: []string{"L3", "phrase"}},
		{Level: domain.LevelAdvanced, Word: "阿姨", Pinyin: "ā yí", English: "maternal aunt", Tags: []string{"noun", "family"}},
	}, items)

	assert.Equal(t, Stats{Rows: 5, Found: 4, Missing: 1, Resolved: 1}, stats)

	require.Len(t, sel.calls, 5)
	assert.Equal(t, selectCall{"本", "běn", domain.PartOfSpeechMeasureWord}, sel.calls[1])
	assert.Equal(t, selectCall{"龘龘", "dádá", domain.PartOfSpeechPhrase}, sel.calls[3])
}

func TestBuilder_Build_Empty(t *testing.T) {
	b := NewBuilder(&mockSelector{}, discardLogger())

	items, stats := b.Build(nil)
	assert.Empty(t, items)
	assert.Equal(t, Stats{}, stats)
}

func TestBuilder_Build_RealSelector(t *testing.T) {
	dict := domain.Dictionary{
		"爸爸": {{PinyinNumeric: "ba4 ba5", Definitions: []string{"(informal) father", "CL:個|个[ge4],位[wei4]"}}},
		"吧":  {{PinyinNumeric: "ba5", Definitions: []string{"(modal particle indicating suggestion or surmise)", "...right?"}}},
	}
	b := NewBuilder(sense.NewSelector(dict), discardLogger())

	items, _ := b.Build([]domain.VocabRow{
		{Index: 1, Level: "L1", Word: "爸爸", Pinyin: "bàba", POSRaw: "名"},
		{Index: 2, Level: "L1", Word: "吧", Pinyin: "ba", POSRaw: "助"},
	})
	require.Len(t, items, 2)

	assert.Equal(t, "bà ba", items[0].Pinyin)
	assert.Equal(t, "informal father", items[0].English)
	assert.Equal(t, []string{"L1", "noun", "family"}, items[0].Tags)

	assert.Equal(t, "ba", items[1].Pinyin)
	assert.Equal(t, "modal particle", items[1].English)
	assert.Equal(t, []string{"L1", "particle", "grammar"}, items[1].Tags)

	for _, it := range items {
		assert.NotEmpty(t, it.English)
	}
}

func TestItemTags(t *testing.T) {
	assert.Equal(t, []string{"L2", "noun"}, itemTags("L2", domain.PartOfSpeechNoun, nil))
	assert.Equal(t, []string{"noun", "food"}, itemTags(domain.LevelAdvanced, domain.PartOfSpeechNoun, []string{"food"}))
	assert.Equal(t, []string{"particle", "grammar"}, itemTags("", domain.PartOfSpeechParticle, []string{"grammar"}))
}
