package syllabus

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/anukauchika/hskvocab/internal/domain"
)

// posMap maps the syllabus part-of-speech abbreviations to domain values.
var posMap = map[string]domain.PartOfSpeech{
	"名":  domain.PartOfSpeechNoun,
	"动":  domain.PartOfSpeechVerb,
	"形":  domain.PartOfSpeechAdjective,
	"副":  domain.PartOfSpeechAdverb,
	"代":  domain.PartOfSpeechPronoun,
	"数":  domain.PartOfSpeechNumber,
	"量":  domain.PartOfSpeechMeasureWord,
	"连":  domain.PartOfSpeechConjunction,
	"介":  domain.PartOfSpeechPreposition,
	"助":  domain.PartOfSpeechParticle,
	"叹":  domain.PartOfSpeechInterjection,
	"后缀": domain.PartOfSpeechSuffix,
	"前缀": domain.PartOfSpeechPrefix,
}

var posSepRe = regexp.MustCompile(`[、，,\s]+`)

// MapPOS returns the first recognised abbreviation in raw. Rows without a
// recognised tag fall back to phrase for multi-character words and noun for
// single characters.
func MapPOS(raw, word string) domain.PartOfSpeech {
	cleaned := strings.NewReplacer("（", "", "）", "").Replace(raw)
	for _, tok := range posSepRe.Split(cleaned, -1) {
		if pos, ok := posMap[tok]; ok {
			return pos
		}
	}
	if utf8.RuneCountInString(word) > 1 {
		return domain.PartOfSpeechPhrase
	}
	return domain.PartOfSpeechNoun
}
