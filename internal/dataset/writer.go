package dataset

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/anukauchika/hskvocab/internal/domain"
)

// Write renders ds in the layout the study app ships: header fields one per
// line, one item object per line, non-ASCII text left unescaped. The output
// ends with a newline.
func Write(w io.Writer, ds domain.Dataset) error {
	bw := bufio.NewWriter(w)

	lines := []string{
		"{",
		`  "kind": ` + quote(ds.Kind) + ",",
		`  "from": ` + quote(ds.From) + ",",
		`  "to": ` + quote(ds.To) + ",",
		`  "search": ` + stringList(ds.Search) + ",",
		`  "groups": [`,
	}
	for _, l := range lines {
		bw.WriteString(l)
		bw.WriteByte('\n')
	}

	for gi, g := range ds.Groups {
		fmt.Fprintf(bw, "    {\n      \"group\": %d,\n      \"tags\": %s,\n      \"items\": [\n", g.Group, stringList(g.Tags))

		for ii, it := range g.Items {
			bw.WriteString("        ")
			bw.WriteString(itemLine(it))
			if ii < len(g.Items)-1 {
				bw.WriteByte(',')
			}
			bw.WriteByte('\n')
		}

		bw.WriteString("      ]\n    }")
		if gi < len(ds.Groups)-1 {
			bw.WriteByte(',')
		}
		bw.WriteByte('\n')
	}

	bw.WriteString("  ]\n}\n")
	return bw.Flush()
}

// WriteFile writes ds to path, creating parent directories.
func WriteFile(path string, ds domain.Dataset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, ds); err != nil {
		return fmt.Errorf("render dataset: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// itemLine renders {"word": ..., "pinyin": ..., "english": ..., "id": n, "tags": [...]}.
func itemLine(it domain.GroupItem) string {
	var b strings.Builder
	b.WriteString(`{"word": `)
	b.WriteString(quote(it.Word))
	b.WriteString(`, "pinyin": `)
	b.WriteString(quote(it.Pinyin))
	b.WriteString(`, "english": `)
	b.WriteString(quote(it.English))
	b.WriteString(`, "id": `)
	b.WriteString(strconv.Itoa(it.ID))
	b.WriteString(`, "tags": `)
	b.WriteString(stringList(it.Tags))
	b.WriteByte('}')
	return b.String()
}

// stringList renders ["a", "b"] with a space after each comma.
func stringList(ss []string) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = quote(s)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// quote encodes s as a JSON string without HTML escaping.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
