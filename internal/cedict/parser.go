// Package cedict parses CC-CEDICT dictionary files into senses keyed by
// simplified headword. Pure function: file path in, domain structs out.
package cedict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/anukauchika/hskvocab/internal/domain"
)

// errSkipLine signals that a line should be skipped (comment, empty, etc.).
var errSkipLine = errors.New("skip line")

// lineRe matches "傳統 传统 [chuan2 tong3] /tradition/traditional/".
var lineRe = regexp.MustCompile(`^(\S+)\s+(\S+)\s+\[([^\]]+)\]\s+/(.+)/$`)

// ParseResult holds the parsed dictionary.
type ParseResult struct {
	Dictionary domain.Dictionary
	Stats      Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines     int
	CommentLines   int
	MalformedLines int
	Senses         int
	Headwords      int
}

// Parse reads a CC-CEDICT file. Files ending in ".gz" are decompressed on
// the fly.
func Parse(filePath string) (ParseResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ParseResult{}, fmt.Errorf("dictionary %s: %w", filePath, domain.ErrNotFound)
		}
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filePath, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return ParseResult{}, fmt.Errorf("open gzip: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	return ParseReader(r)
}

// ParseReader parses CC-CEDICT lines from r.
func ParseReader(r io.Reader) (ParseResult, error) {
	result := ParseResult{
		Dictionary: make(domain.Dictionary),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		result.Stats.TotalLines++
		line := strings.TrimSpace(scanner.Text())

		word, sense, err := parseLine(line)
		if errors.Is(err, errSkipLine) {
			if strings.HasPrefix(line, "#") {
				result.Stats.CommentLines++
			}
			continue
		}
		if err != nil {
			result.Stats.MalformedLines++
			continue
		}

		result.Stats.Senses++
		result.Dictionary[word] = append(result.Dictionary[word], sense)
	}

	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("scanner error: %w", err)
	}

	result.Stats.Headwords = len(result.Dictionary)
	return result, nil
}

var errMalformed = errors.New("malformed line")

// parseLine parses a single trimmed line. Returns the simplified headword and
// its sense, errSkipLine for comments and blank lines, or errMalformed.
func parseLine(line string) (string, domain.DictionarySense, error) {
	if line == "" || strings.HasPrefix(line, "#") {
		return "", domain.DictionarySense{}, errSkipLine
	}

	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return "", domain.DictionarySense{}, errMalformed
	}

	var defs []string
	for _, d := range strings.Split(m[4], "/") {
		if d != "" {
			defs = append(defs, d)
		}
	}

	return m[2], domain.DictionarySense{
		PinyinNumeric: m[3],
		Definitions:   defs,
	}, nil
}
