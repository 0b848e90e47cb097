// Package dataset groups vocabulary items into the study-app document and
// writes it to disk.
package dataset

import (
	"github.com/anukauchika/hskvocab/internal/domain"
)

// DefaultGroupSize is the number of items per study group.
const DefaultGroupSize = 15

// Assemble partitions items in order into groups of groupSize. A groupSize
// of zero or less uses DefaultGroupSize. Group tags list the distinct item
// levels in first-appearance order, without the combined 7-9 band.
func Assemble(items []domain.VocabItem, groupSize int) domain.Dataset {
	if groupSize <= 0 {
		groupSize = DefaultGroupSize
	}

	ds := domain.Dataset{
		Kind:   domain.DatasetKind,
		From:   domain.DatasetFrom,
		To:     domain.DatasetTo,
		Search: domain.DatasetSearchFields(),
		Groups: make([]domain.Group, 0, (len(items)+groupSize-1)/groupSize),
	}

	for start := 0; start < len(items); start += groupSize {
		end := min(start+groupSize, len(items))
		chunk := items[start:end]

		g := domain.Group{
			Group: len(ds.Groups) + 1,
			Tags:  groupTags(chunk),
			Items: make([]domain.GroupItem, len(chunk)),
		}
		for i, it := range chunk {
			g.Items[i] = domain.GroupItem{
				Word:    it.Word,
				Pinyin:  it.Pinyin,
				English: it.English,
				ID:      i + 1,
				Tags:    it.Tags,
			}
		}
		ds.Groups = append(ds.Groups, g)
	}

	return ds
}

func groupTags(chunk []domain.VocabItem) []string {
	seen := make(map[string]bool, len(chunk))
	tags := make([]string, 0, 2)
	for _, it := range chunk {
		if seen[it.Level] {
			continue
		}
		seen[it.Level] = true
		if it.Level != domain.LevelAdvanced {
			tags = append(tags, it.Level)
		}
	}
	return tags
}
