package sense

import (
	"strings"

	"github.com/anukauchika/hskvocab/internal/domain"
	"github.com/anukauchika/hskvocab/internal/pinyin"
)

const (
	crossRefPenalty  = -10
	pinyinMatchBonus = 5
	prefixBonus      = 3
	particleBonus    = 2
	measureWordBonus = 2
)

// penalties lower senses that describe names, historical or literary usage.
// Every keyword found in the joined definitions applies once.
var penalties = []struct {
	keyword string
	points  int
}{
	{"surname", -5},
	{"person name", -4},
	{"place name", -4},
	{"name of", -3},
	{"the great learning", -4},
	{"confucian", -4},
	{"dynasty", -2},
	{"classical", -2},
	{"literary", -2},
	{"old-style", -2},
	{"imperial", -2},
}

// Score rates how well s fits a syllabus row with reading docPinyin and
// part of speech pos. Higher is better.
func Score(s domain.DictionarySense, docPinyin string, pos domain.PartOfSpeech) int {
	score := 0
	if IsCrossReference(s.Definitions) {
		score += crossRefPenalty
	}

	text := strings.ToLower(strings.Join(s.Definitions, " "))
	for _, p := range penalties {
		if strings.Contains(text, p.keyword) {
			score += p.points
		}
	}

	switch pos {
	case domain.PartOfSpeechPrefix:
		if strings.Contains(text, "ordinal") || strings.Contains(text, "prefix") {
			score += prefixBonus
		}
	case domain.PartOfSpeechParticle:
		if strings.Contains(text, "particle") {
			score += particleBonus
		}
	case domain.PartOfSpeechMeasureWord:
		if strings.Contains(text, "measure word") || strings.Contains(text, "classifier") ||
			strings.Contains(text, "o'clock") {
			score += measureWordBonus
		}
	}

	if pinyin.Fold(pinyin.Convert(s.PinyinNumeric)) == pinyin.Fold(docPinyin) {
		score += pinyinMatchBonus
	}
	return score
}
