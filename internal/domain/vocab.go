package domain

// VocabRow is one parsed line of the syllabus vocabulary table.
type VocabRow struct {
	Index  int
	Level  string // "L1".."L9" or LevelAdvanced
	Word   string // trailing homograph index digits already stripped
	Pinyin string // the document's own spelling
	POSRaw string // raw abbreviation tokens, may be empty
}

// DictionarySense is one dictionary line for a headword.
type DictionarySense struct {
	PinyinNumeric string   // space-separated syllables, each ending in 1-5
	Definitions   []string // slash-delimited definitions in source order
}

// Dictionary maps a simplified headword to its senses in source order.
type Dictionary map[string][]DictionarySense

// Lookup returns the senses for word; ok is false when the word is absent
// or has no senses.
func (d Dictionary) Lookup(word string) ([]DictionarySense, bool) {
	senses, ok := d[word]
	if !ok || len(senses) == 0 {
		return nil, false
	}
	return senses, true
}

// VocabItem is the output unit for a single syllabus row.
type VocabItem struct {
	Level   string
	Word    string
	Pinyin  string
	English string
	Tags    []string
}

// GroupItem is a VocabItem placed in a group with its 1-based position.
type GroupItem struct {
	Word    string   `json:"word"`
	Pinyin  string   `json:"pinyin"`
	English string   `json:"english"`
	ID      int      `json:"id"`
	Tags    []string `json:"tags"`
}

// Group is a fixed-size slice of the item sequence.
type Group struct {
	Group int         `json:"group"`
	Tags  []string    `json:"tags"`
	Items []GroupItem `json:"items"`
}

// Dataset is the document consumed by the study application.
type Dataset struct {
	Kind   string   `json:"kind"`
	From   string   `json:"from"`
	To     string   `json:"to"`
	Search []string `json:"search"`
	Groups []Group  `json:"groups"`
}

// ItemCount returns the total number of items across all groups.
func (d Dataset) ItemCount() int {
	n := 0
	for i := range d.Groups {
		n += len(d.Groups[i].Items)
	}
	return n
}
