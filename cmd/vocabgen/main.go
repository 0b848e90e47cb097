// Command vocabgen builds an HSK 3.0 vocabulary dataset from the official
// syllabus PDF (or its pdftotext rendering) and a CC-CEDICT dictionary, and
// writes it as grouped JSON for the study application. With --publish the
// dataset is also stored in PostgreSQL.
//
// Flags:
//
//	--pdf           syllabus PDF to render with pdftotext (optional)
//	--txt           syllabus text path (pdftotext output or an existing file)
//	--dict          CC-CEDICT path, plain or .gz
//	--levels        comma-separated levels: 1..6 and 7-9 (default 1,2,3)
//	--out           output JSON path (default data/chinese/hskv3<stage>.json)
//	--config        path to the app YAML config (log, database)
//	--vocab-config  path to the pipeline YAML config
//	--publish       store the dataset in PostgreSQL
//	--migrate       apply database migrations before publishing
//	--dry-run       build without writing files or the database
//	--version       print the version and exit
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/anukauchika/hskvocab/internal/adapter/postgres"
	"github.com/anukauchika/hskvocab/internal/adapter/postgres/vocabset"
	"github.com/anukauchika/hskvocab/internal/app"
	"github.com/anukauchika/hskvocab/internal/app/vocabgen"
	"github.com/anukauchika/hskvocab/internal/syllabus"
)

func main() {
	pdfFlag := flag.String("pdf", "", "syllabus PDF to render with pdftotext")
	txtFlag := flag.String("txt", "", "syllabus text path")
	dictFlag := flag.String("dict", "", "CC-CEDICT path (plain or .gz)")
	levelsFlag := flag.String("levels", "", "comma-separated levels, e.g. 1,2,3 or 7-9")
	outFlag := flag.String("out", "", "output JSON path")
	configFlag := flag.String("config", "", "path to app YAML config")
	vocabConfigFlag := flag.String("vocab-config", "", "path to pipeline YAML config")
	publishFlag := flag.Bool("publish", false, "store the dataset in PostgreSQL")
	migrateFlag := flag.Bool("migrate", false, "apply database migrations before publishing")
	dryRunFlag := flag.Bool("dry-run", false, "build without writing files or the database")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(app.BuildVersion())
		return
	}

	appCfg, logger, err := app.Bootstrap(*configFlag)
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	cfg, err := vocabgen.LoadConfig(*vocabConfigFlag)
	if err != nil {
		logger.Error("load pipeline config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["pdf"] {
		cfg.PDFPath = *pdfFlag
	}
	if set["txt"] {
		cfg.TextPath = *txtFlag
	}
	if set["dict"] {
		cfg.DictionaryPath = *dictFlag
	}
	if set["levels"] {
		cfg.Levels = *levelsFlag
	}
	if set["out"] {
		cfg.OutputPath = *outFlag
	}
	if *publishFlag {
		cfg.Publish = true
	}
	if *dryRunFlag {
		cfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if *migrateFlag {
		applied, err := postgres.Migrate(ctx, appCfg.Database.DSN)
		if err != nil {
			logger.Error("migrate database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	var repo vocabgen.DatasetRepo
	if cfg.Publish && !cfg.DryRun {
		pool, err := postgres.NewPool(ctx, appCfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()

		repo = vocabset.New(pool, postgres.NewTxManager(pool))
	}

	extractor := syllabus.PDFToText{Binary: cfg.PDFToText}

	pipeline := vocabgen.NewPipeline(logger, *cfg, extractor, repo)
	if err := pipeline.Run(ctx); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("dataset ready",
		slog.String("stage", pipeline.Stage()),
		slog.String("output", pipeline.OutputPath()),
		slog.Int("items", pipeline.Dataset().ItemCount()),
	)
}
