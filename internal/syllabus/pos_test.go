package syllabus

import (
	"testing"

	"github.com/anukauchika/hskvocab/internal/domain"
)

func TestMapPOS(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		word string
		want domain.PartOfSpeech
	}{
		{"noun", "名", "爸爸", domain.PartOfSpeechNoun},
		{"verb", "动", "爱", domain.PartOfSpeechVerb},
		{"adjective", "形", "大", domain.PartOfSpeechAdjective},
		{"adverb", "副", "很", domain.PartOfSpeechAdverb},
		{"pronoun", "代", "我", domain.PartOfSpeechPronoun},
		{"number", "数", "八", domain.PartOfSpeechNumber},
		{"measure word", "量", "本", domain.PartOfSpeechMeasureWord},
		{"conjunction", "连", "和", domain.PartOfSpeechConjunction},
		{"preposition", "介", "在", domain.PartOfSpeechPreposition},
		{"particle", "助", "吧", domain.PartOfSpeechParticle},
		{"interjection", "叹", "喂", domain.PartOfSpeechInterjection},
		{"suffix", "后缀", "们", domain.PartOfSpeechSuffix},
		{"prefix", "前缀", "第", domain.PartOfSpeechPrefix},
		{"first of a list", "量、名", "本", domain.PartOfSpeechMeasureWord},
		{"fullwidth comma", "介，动", "比", domain.PartOfSpeechPreposition},
		{"space separated", "介 动", "比", domain.PartOfSpeechPreposition},
		{"fullwidth parens removed", "（名）", "面", domain.PartOfSpeechNoun},
		{"unknown tag skipped", "xx、动", "看", domain.PartOfSpeechVerb},
		{"empty multi-char", "", "不客气", domain.PartOfSpeechPhrase},
		{"empty single char", "", "好", domain.PartOfSpeechNoun},
		{"unknown multi-char", "短语", "打电话", domain.PartOfSpeechPhrase},
		{"unknown single char", "xx", "好", domain.PartOfSpeechNoun},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapPOS(tt.raw, tt.word); got != tt.want {
				t.Errorf("MapPOS(%q, %q) = %q, want %q", tt.raw, tt.word, got, tt.want)
			}
		})
	}
}
