package sense

import (
	"testing"

	"github.com/anukauchika/hskvocab/internal/domain"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		sense     domain.DictionarySense
		docPinyin string
		pos       domain.PartOfSpeech
		want      int
	}{
		{
			name:      "plain sense, reading differs",
			sense:     domain.DictionarySense{PinyinNumeric: "chi1", Definitions: []string{"to eat"}},
			docPinyin: "chī fàn",
			pos:       domain.PartOfSpeechVerb,
			want:      0,
		},
		{
			name:      "reading match",
			sense:     domain.DictionarySense{PinyinNumeric: "chi1", Definitions: []string{"to eat"}},
			docPinyin: "chī",
			pos:       domain.PartOfSpeechVerb,
			want:      5,
		},
		{
			name:      "reading match ignores spaces and case",
			sense:     domain.DictionarySense{PinyinNumeric: "Zhong1 guo2", Definitions: []string{"China"}},
			docPinyin: "zhōngguó",
			pos:       domain.PartOfSpeechNoun,
			want:      5,
		},
		{
			name:      "pure cross-reference",
			sense:     domain.DictionarySense{PinyinNumeric: "ni3", Definitions: []string{"variant of 你[ni3]"}},
			docPinyin: "wǒ",
			pos:       domain.PartOfSpeechPronoun,
			want:      -10,
		},
		{
			name:      "empty definitions count as cross-reference",
			sense:     domain.DictionarySense{PinyinNumeric: "ni3"},
			docPinyin: "nǐ",
			pos:       domain.PartOfSpeechPronoun,
			want:      -5,
		},
		{
			name:      "surname penalty",
			sense:     domain.DictionarySense{PinyinNumeric: "Zhang1", Definitions: []string{"surname Zhang"}},
			docPinyin: "zhāng",
			pos:       domain.PartOfSpeechMeasureWord,
			want:      0,
		},
		{
			name: "penalties accumulate",
			sense: domain.DictionarySense{
				PinyinNumeric: "Kong3",
				Definitions:   []string{"surname Kong", "Confucian classical text of the Han dynasty"},
			},
			docPinyin: "kǒng",
			pos:       domain.PartOfSpeechNoun,
			want:      -5 - 4 - 2 - 2 + 5,
		},
		{
			name:      "prefix bonus",
			sense:     domain.DictionarySense{PinyinNumeric: "di4", Definitions: []string{"prefix indicating ordinal number"}},
			docPinyin: "dì",
			pos:       domain.PartOfSpeechPrefix,
			want:      3 + 5,
		},
		{
			name:      "particle bonus",
			sense:     domain.DictionarySense{PinyinNumeric: "ma5", Definitions: []string{"(question particle)"}},
			docPinyin: "ma",
			pos:       domain.PartOfSpeechParticle,
			want:      2 + 5,
		},
		{
			name:      "measure word bonus",
			sense:     domain.DictionarySense{PinyinNumeric: "ben3", Definitions: []string{"classifier for books"}},
			docPinyin: "běn",
			pos:       domain.PartOfSpeechMeasureWord,
			want:      2 + 5,
		},
		{
			name:      "measure word bonus needs the right pos",
			sense:     domain.DictionarySense{PinyinNumeric: "ben3", Definitions: []string{"classifier for books"}},
			docPinyin: "běn",
			pos:       domain.PartOfSpeechNoun,
			want:      5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.sense, tt.docPinyin, tt.pos)
			if got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScore_DefinitionBeatsCrossReference(t *testing.T) {
	xref := domain.DictionarySense{PinyinNumeric: "ge4", Definitions: []string{"variant of 個|个[ge4]"}}

	good := []domain.DictionarySense{
		{PinyinNumeric: "ge4", Definitions: []string{"classifier for people or objects in general"}},
		{PinyinNumeric: "ge4", Definitions: []string{"individual", "this", "that"}},
	}
	for _, pos := range []domain.PartOfSpeech{domain.PartOfSpeechMeasureWord, domain.PartOfSpeechNoun} {
		for _, g := range good {
			if Score(g, "gè", pos) <= Score(xref, "gè", pos) {
				t.Errorf("pos %q: %v should outrank %v", pos, g.Definitions, xref.Definitions)
			}
		}
	}
}
