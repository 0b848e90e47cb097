package vocabgen_test

import (
	"github.com/anukauchika/hskvocab/internal/adapter/postgres/vocabset"
	"github.com/anukauchika/hskvocab/internal/app/vocabgen"
	"github.com/anukauchika/hskvocab/internal/syllabus"
)

// Compile-time checks for the production implementations.
var (
	_ vocabgen.DatasetRepo   = (*vocabset.Repo)(nil)
	_ vocabgen.TextExtractor = syllabus.PDFToText{}
)
