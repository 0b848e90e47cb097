// Package vocabgen orchestrates the vocabulary build: syllabus text and
// dictionary in, grouped dataset file (and optionally a database copy) out.
package vocabgen

import (
	"context"

	"github.com/anukauchika/hskvocab/internal/domain"
)

// DatasetRepo stores published datasets.
// Implemented by vocabset.Repo.
type DatasetRepo interface {
	// ReplaceDataset atomically replaces the dataset stored under slug and
	// returns the number of items written.
	ReplaceDataset(ctx context.Context, slug string, ds domain.Dataset) (int, error)
	CountItems(ctx context.Context, slug string) (int, error)
}

// TextExtractor renders the syllabus PDF to plain text.
// Implemented by syllabus.PDFToText.
type TextExtractor interface {
	Extract(ctx context.Context, pdfPath, txtPath string) error
}
