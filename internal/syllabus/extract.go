package syllabus

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/anukauchika/hskvocab/internal/domain"
)

const defaultPDFToText = "pdftotext"

// PDFToText renders the syllabus PDF to text with poppler's pdftotext in raw
// mode, which keeps each table row on one line.
type PDFToText struct {
	// Binary is the executable to run. Empty means "pdftotext" from PATH.
	Binary string
}

// Extract writes the text of pdfPath to txtPath, creating its directory.
func (p PDFToText) Extract(ctx context.Context, pdfPath, txtPath string) error {
	if _, err := os.Stat(pdfPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("syllabus pdf %s: %w", pdfPath, domain.ErrNotFound)
		}
		return fmt.Errorf("stat pdf: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(txtPath), 0o755); err != nil {
		return fmt.Errorf("create text dir: %w", err)
	}

	bin := p.Binary
	if bin == "" {
		bin = defaultPDFToText
	}

	cmd := exec.CommandContext(ctx, bin, "-raw", pdfPath, txtPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		trimmed := strings.TrimSpace(string(out))
		if trimmed == "" {
			return fmt.Errorf("%s %s failed: %w", bin, pdfPath, err)
		}
		return fmt.Errorf("%s %s failed: %w (%s)", bin, pdfPath, err, trimmed)
	}
	return nil
}
