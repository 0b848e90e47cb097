// Package vocab turns syllabus rows into tagged vocabulary items.
package vocab

import (
	"log/slog"

	"github.com/anukauchika/hskvocab/internal/domain"
	"github.com/anukauchika/hskvocab/internal/sense"
	"github.com/anukauchika/hskvocab/internal/syllabus"
	"github.com/anukauchika/hskvocab/internal/topic"
)

// SenseSelector picks the reading and gloss for a word.
type SenseSelector interface {
	Select(word, docPinyin string, pos domain.PartOfSpeech) sense.Result
}

// Stats counts how rows were resolved.
type Stats struct {
	Rows     int
	Found    int
	Missing  int
	Resolved int
}

// Builder produces one VocabItem per syllabus row, in row order.
type Builder struct {
	selector SenseSelector
	log      *slog.Logger
}

// NewBuilder creates a Builder.
func NewBuilder(selector SenseSelector, log *slog.Logger) *Builder {
	return &Builder{selector: selector, log: log}
}

// Build maps every row to an item. It never fails; words absent from the
// dictionary keep the syllabus reading and use the word as the gloss.
func (b *Builder) Build(rows []domain.VocabRow) ([]domain.VocabItem, Stats) {
	items := make([]domain.VocabItem, 0, len(rows))
	var stats Stats

	for _, row := range rows {
		stats.Rows++
		pos := syllabus.MapPOS(row.POSRaw, row.Word)
		res := b.selector.Select(row.Word, row.Pinyin, pos)

		switch {
		case !res.Found:
			stats.Missing++
			b.log.Debug("word not in dictionary",
				slog.Int("index", row.Index),
				slog.String("word", row.Word),
			)
		case res.Resolved:
			stats.Found++
			stats.Resolved++
		default:
			stats.Found++
		}

		items = append(items, domain.VocabItem{
			Level:   row.Level,
			Word:    row.Word,
			Pinyin:  res.Pinyin,
			English: res.English,
			Tags:    itemTags(row.Level, pos, topic.Tags(row.Word, res.English, pos)),
		})
	}

	return items, stats
}

// itemTags orders tags as level, part of speech, then topics. The combined
// 7-9 band carries no level tag.
func itemTags(level string, pos domain.PartOfSpeech, topics []string) []string {
	tags := make([]string, 0, 2+len(topics))
	if level != "" && level != domain.LevelAdvanced {
		tags = append(tags, level)
	}
	tags = append(tags, pos.String())
	return append(tags, topics...)
}
