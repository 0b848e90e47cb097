package sense

import (
	"sort"
	"strings"

	"github.com/anukauchika/hskvocab/internal/domain"
	"github.com/anukauchika/hskvocab/internal/gloss"
	"github.com/anukauchika/hskvocab/internal/pinyin"
)

// Result is the reading and gloss chosen for one syllabus word.
type Result struct {
	Pinyin  string
	English string
	// Found is false when the word has no dictionary entry at all.
	Found bool
	// Resolved is true when a variant cross-reference was followed.
	Resolved bool
}

// Selector picks senses from a read-only dictionary.
type Selector struct {
	dict domain.Dictionary
}

// NewSelector creates a Selector over dict.
func NewSelector(dict domain.Dictionary) *Selector {
	return &Selector{dict: dict}
}

type candidate struct {
	sense domain.DictionarySense
	score int
}

// Select returns the best reading and gloss for word. It never fails: a word
// missing from the dictionary yields docPinyin and the word itself.
func (s *Selector) Select(word, docPinyin string, pos domain.PartOfSpeech) Result {
	senses, ok := s.dict.Lookup(word)
	if !ok {
		return Result{Pinyin: docPinyin, English: word}
	}

	chosen := best(senses, docPinyin, pos)

	res := Result{Found: true}
	if target, ok := s.resolve(word, chosen); ok {
		chosen = target
		res.Resolved = true
	}

	res.Pinyin = pinyin.Convert(chosen.PinyinNumeric)
	res.English = pickGloss(chosen.Definitions, pos, pinyin.Compact(res.Pinyin))
	if res.English == "" {
		res.English = firstLine(chosen.Definitions)
	}
	if res.English == "" {
		res.English = word
	}
	return res
}

// best ranks senses by score; the first-listed sense wins ties.
func best(senses []domain.DictionarySense, docPinyin string, pos domain.PartOfSpeech) domain.DictionarySense {
	cands := make([]candidate, len(senses))
	for i, sn := range senses {
		cands[i] = candidate{sense: sn, score: Score(sn, docPinyin, pos)}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].score > cands[j].score
	})
	return cands[0].sense
}

// resolve follows one "variant of" hop. Self references, unknown targets and
// targets that are themselves cross-references keep the original sense.
func (s *Selector) resolve(word string, chosen domain.DictionarySense) (domain.DictionarySense, bool) {
	if !IsCrossReference(chosen.Definitions) {
		return domain.DictionarySense{}, false
	}
	target, ok := VariantTarget(chosen.Definitions)
	if !ok || target == word {
		return domain.DictionarySense{}, false
	}
	senses, ok := s.dict.Lookup(target)
	if !ok || IsCrossReference(senses[0].Definitions) {
		return domain.DictionarySense{}, false
	}
	return senses[0], true
}

// pickGloss splits non-pointer definitions on ';', cleans every piece and
// returns the preferred one for pos. compact is the toneless reading; a
// piece equal to it is a transliteration and is dropped.
func pickGloss(defs []string, pos domain.PartOfSpeech, compact string) string {
	var segments []string
	for _, d := range defs {
		if isCrossRefLine(d) {
			continue
		}
		for _, piece := range strings.Split(d, ";") {
			seg := gloss.CleanSegment(piece, pos)
			if seg == "" || strings.ToLower(seg) == compact {
				continue
			}
			segments = append(segments, seg)
		}
	}
	if len(segments) == 0 {
		return ""
	}
	if pref, ok := gloss.Preferred(segments, pos); ok {
		return pref
	}
	return segments[0]
}

func firstLine(defs []string) string {
	if len(defs) == 0 {
		return ""
	}
	head, _, _ := strings.Cut(defs[0], ";")
	return strings.TrimSpace(head)
}
