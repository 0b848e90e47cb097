package vocabgen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds build pipeline settings.
type Config struct {
	PDFPath        string `yaml:"pdf_path"        env:"VOCABGEN_PDF_PATH"`
	TextPath       string `yaml:"text_path"       env:"VOCABGEN_TEXT_PATH"       env-default:"/tmp/hskv3_raw.txt"`
	DictionaryPath string `yaml:"dictionary_path" env:"VOCABGEN_DICTIONARY_PATH" env-default:"cedict_1_0_ts_utf-8_mdbg.txt.gz"`
	OutputPath     string `yaml:"output_path"     env:"VOCABGEN_OUTPUT_PATH"`
	Levels         string `yaml:"levels"          env:"VOCABGEN_LEVELS"          env-default:"1,2,3"`
	PDFToText      string `yaml:"pdftotext"       env:"VOCABGEN_PDFTOTEXT"       env-default:"pdftotext"`
	Publish        bool   `yaml:"publish"         env:"VOCABGEN_PUBLISH"`
	DryRun         bool   `yaml:"dry_run"         env:"VOCABGEN_DRY_RUN"`
}

// LoadConfig reads pipeline configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("vocabgen config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("vocabgen config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("vocabgen config: read env: %w", err)
	}

	return &cfg, nil
}

// DatasetSlug names the dataset of a syllabus stage, e.g. "hskv3elementary".
func DatasetSlug(stage string) string {
	return "hskv3" + stage
}

// OutputFor returns the configured output path, or the per-stage default
// data/chinese/hskv3<stage>.json.
func (c Config) OutputFor(stage string) string {
	if c.OutputPath != "" {
		return c.OutputPath
	}
	return filepath.Join("data", "chinese", DatasetSlug(stage)+".json")
}
