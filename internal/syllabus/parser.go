// Package syllabus reads the vocabulary table of the HSK 3.0 syllabus from
// the plain-text rendering of its PDF.
package syllabus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/anukauchika/hskvocab/internal/domain"
)

const (
	tableHeader     = "序号 等级 词语 拼音 词性"
	tableTerminator = "汉字大纲"
	levelNoteMark   = "（"
)

// ErrHeaderNotFound is returned when the text holds no vocabulary table.
var ErrHeaderNotFound = errors.New("vocabulary table header not found")

var (
	rowRe            = regexp.MustCompile(`^\d+\s+\d`)
	homographIndexRe = regexp.MustCompile(`(\D)\d+$`)
)

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines  int // lines inside the table section
	RowLines    int // lines that look like table rows
	ShortLines  int // row-like lines with fewer than four fields
	OtherLevels int // rows outside the requested levels
	ParsedRows  int
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string, levels LevelSet) ([]domain.VocabRow, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, Stats{}, fmt.Errorf("syllabus text %s: %w", path, domain.ErrNotFound)
		}
		return nil, Stats{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return Parse(f, levels)
}

// Parse extracts the vocabulary rows for the requested levels. Rows come
// back sorted by their table index.
func Parse(r io.Reader, levels LevelSet) ([]domain.VocabRow, Stats, error) {
	var (
		rows    []domain.VocabRow
		stats   Stats
		inTable bool
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if !inTable {
			idx := strings.Index(line, tableHeader)
			if idx < 0 {
				continue
			}
			inTable = true
			line = line[idx:]
		}

		done := false
		if idx := strings.Index(line, tableTerminator); idx >= 0 {
			line = line[:idx]
			done = true
		}

		stats.TotalLines++
		row, err := parseLine(strings.TrimSpace(line), levels)
		switch {
		case err == nil:
			stats.RowLines++
			stats.ParsedRows++
			rows = append(rows, row)
		case errors.Is(err, errShortLine):
			stats.RowLines++
			stats.ShortLines++
		case errors.Is(err, errOtherLevel):
			stats.RowLines++
			stats.OtherLevels++
		}

		if done {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, Stats{}, fmt.Errorf("scanner error: %w", err)
	}
	if !inTable {
		return nil, Stats{}, ErrHeaderNotFound
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Index < rows[j].Index })
	return rows, stats, nil
}

var (
	errSkipLine   = errors.New("skip line")
	errShortLine  = errors.New("short line")
	errOtherLevel = errors.New("level not requested")
)

// parseLine parses "12 1 爸爸 bàba 名" into a row. The level column may carry
// a parenthesised note, as in "3（四）", and the word a homograph index, as in
// "会2".
func parseLine(line string, levels LevelSet) (domain.VocabRow, error) {
	if !rowRe.MatchString(line) {
		return domain.VocabRow{}, errSkipLine
	}

	fields := strings.Fields(line)
	if len(fields) < 4 {
		return domain.VocabRow{}, errShortLine
	}

	index, err := strconv.Atoi(fields[0])
	if err != nil {
		return domain.VocabRow{}, errSkipLine
	}

	base, _, _ := strings.Cut(fields[1], levelNoteMark)
	var level string
	if base == advancedBand {
		if !levels.IncludesAdvanced() {
			return domain.VocabRow{}, errOtherLevel
		}
		level = domain.LevelAdvanced
	} else {
		if !levels.Has(base) {
			return domain.VocabRow{}, errOtherLevel
		}
		level = "L" + base
	}

	return domain.VocabRow{
		Index:  index,
		Level:  level,
		Word:   homographIndexRe.ReplaceAllString(fields[2], "$1"),
		Pinyin: fields[3],
		POSRaw: strings.Join(fields[4:], " "),
	}, nil
}
