package vocabgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anukauchika/hskvocab/internal/cedict"
	"github.com/anukauchika/hskvocab/internal/dataset"
	"github.com/anukauchika/hskvocab/internal/domain"
	"github.com/anukauchika/hskvocab/internal/sense"
	"github.com/anukauchika/hskvocab/internal/syllabus"
	"github.com/anukauchika/hskvocab/internal/vocab"
)

// Phase names in execution order.
const (
	PhaseExtract    = "extract"
	PhaseSyllabus   = "syllabus"
	PhaseDictionary = "dictionary"
	PhaseBuild      = "build"
	PhaseWrite      = "write"
	PhasePublish    = "publish"
)

var allPhases = []string{PhaseExtract, PhaseSyllabus, PhaseDictionary, PhaseBuild, PhaseWrite, PhasePublish}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Count    int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline runs the build phases in order and keeps their results.
type Pipeline struct {
	log       *slog.Logger
	cfg       Config
	extractor TextExtractor
	repo      DatasetRepo
	results   map[string]PhaseResult

	levels  syllabus.LevelSet
	rows    []domain.VocabRow
	dict    domain.Dictionary
	dataset domain.Dataset
}

// NewPipeline creates a new Pipeline. repo may be nil, in which case the
// publish phase is skipped.
func NewPipeline(log *slog.Logger, cfg Config, extractor TextExtractor, repo DatasetRepo) *Pipeline {
	return &Pipeline{
		log:       log,
		cfg:       cfg,
		extractor: extractor,
		repo:      repo,
		results:   make(map[string]PhaseResult),
		levels:    syllabus.ParseLevels(cfg.Levels),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// Dataset returns the assembled dataset after Run completes.
func (p *Pipeline) Dataset() domain.Dataset {
	return p.dataset
}

// Stage returns the syllabus stage of the configured levels.
func (p *Pipeline) Stage() string {
	return p.levels.Stage()
}

// OutputPath returns the file the write phase targets.
func (p *Pipeline) OutputPath() string {
	return p.cfg.OutputFor(p.Stage())
}

// HasErrors returns true if any phase recorded an error.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// fatalPhases abort the run on failure; later phases depend on their output.
var fatalPhases = map[string]bool{
	PhaseExtract:    true,
	PhaseSyllabus:   true,
	PhaseDictionary: true,
	PhaseWrite:      true,
}

// Run executes every phase in order.
func (p *Pipeline) Run(ctx context.Context) error {
	p.log.Info("pipeline started",
		slog.String("stage", p.Stage()),
		slog.Any("levels", p.levels.Slice()),
		slog.Bool("dry_run", p.cfg.DryRun),
	)

	for _, phase := range allPhases {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("pipeline interrupted before %s: %w", phase, err)
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case PhaseExtract:
			result = p.runExtract(ctx)
		case PhaseSyllabus:
			result = p.runSyllabus()
		case PhaseDictionary:
			result = p.runDictionary()
		case PhaseBuild:
			result = p.runBuild()
		case PhaseWrite:
			result = p.runWrite()
		case PhasePublish:
			result = p.runPublish(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			if fatalPhases[phase] {
				return fmt.Errorf("%s: %w", phase, result.Err)
			}
			continue
		}

		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("count", result.Count),
			slog.Int("skipped", result.Skipped),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed",
		slog.Int("groups", len(p.dataset.Groups)),
		slog.Int("items", p.dataset.ItemCount()),
	)
	return nil
}

// runExtract renders the PDF to text when a PDF is configured.
func (p *Pipeline) runExtract(ctx context.Context) PhaseResult {
	if p.cfg.PDFPath == "" {
		return PhaseResult{Skipped: 1}
	}
	if p.extractor == nil {
		return PhaseResult{Err: errors.New("pdf path set but no text extractor configured")}
	}
	if err := p.extractor.Extract(ctx, p.cfg.PDFPath, p.cfg.TextPath); err != nil {
		return PhaseResult{Err: fmt.Errorf("extract %s: %w", p.cfg.PDFPath, err)}
	}
	return PhaseResult{Count: 1}
}

// runSyllabus parses vocabulary rows for the requested levels.
func (p *Pipeline) runSyllabus() PhaseResult {
	rows, stats, err := syllabus.ParseFile(p.cfg.TextPath, p.levels)
	if err != nil {
		return PhaseResult{Err: err}
	}
	p.rows = rows

	p.log.Info("syllabus parsed",
		slog.Int("lines", stats.TotalLines),
		slog.Int("rows", stats.ParsedRows),
		slog.Int("other_levels", stats.OtherLevels),
		slog.Int("short_lines", stats.ShortLines),
	)
	return PhaseResult{Count: stats.ParsedRows, Skipped: stats.OtherLevels + stats.ShortLines}
}

// runDictionary loads CC-CEDICT.
func (p *Pipeline) runDictionary() PhaseResult {
	result, err := cedict.Parse(p.cfg.DictionaryPath)
	if err != nil {
		return PhaseResult{Err: err}
	}
	p.dict = result.Dictionary

	p.log.Info("dictionary parsed",
		slog.Int("lines", result.Stats.TotalLines),
		slog.Int("senses", result.Stats.Senses),
		slog.Int("headwords", result.Stats.Headwords),
		slog.Int("malformed", result.Stats.MalformedLines),
	)
	return PhaseResult{Count: result.Stats.Headwords, Skipped: result.Stats.MalformedLines}
}

// runBuild selects senses, tags items and groups them. It cannot fail.
func (p *Pipeline) runBuild() PhaseResult {
	builder := vocab.NewBuilder(sense.NewSelector(p.dict), p.log)
	items, stats := builder.Build(p.rows)
	p.dataset = dataset.Assemble(items, dataset.DefaultGroupSize)

	p.log.Info("items built",
		slog.Int("rows", stats.Rows),
		slog.Int("found", stats.Found),
		slog.Int("missing", stats.Missing),
		slog.Int("variants_resolved", stats.Resolved),
		slog.Int("groups", len(p.dataset.Groups)),
	)
	return PhaseResult{Count: len(items), Skipped: stats.Missing}
}

// runWrite saves the dataset JSON file.
func (p *Pipeline) runWrite() PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: 1}
	}
	path := p.OutputPath()
	if err := dataset.WriteFile(path, p.dataset); err != nil {
		return PhaseResult{Err: err}
	}
	p.log.Info("dataset written", slog.String("path", path))
	return PhaseResult{Count: p.dataset.ItemCount()}
}

// runPublish replaces the stored copy of the dataset and checks the count.
func (p *Pipeline) runPublish(ctx context.Context) PhaseResult {
	if p.cfg.DryRun || !p.cfg.Publish || p.repo == nil {
		return PhaseResult{Skipped: 1}
	}

	slug := DatasetSlug(p.Stage())
	written, err := p.repo.ReplaceDataset(ctx, slug, p.dataset)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("replace dataset %s: %w", slug, err)}
	}

	stored, err := p.repo.CountItems(ctx, slug)
	if err != nil {
		return PhaseResult{Count: written, Err: fmt.Errorf("count items %s: %w", slug, err)}
	}
	if stored != p.dataset.ItemCount() {
		return PhaseResult{
			Count: written,
			Err:   fmt.Errorf("dataset %s: stored %d items, expected %d", slug, stored, p.dataset.ItemCount()),
		}
	}
	return PhaseResult{Count: written}
}
