package vocabgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/hskv3_raw.txt", cfg.TextPath)
	assert.Equal(t, "cedict_1_0_ts_utf-8_mdbg.txt.gz", cfg.DictionaryPath)
	assert.Equal(t, "1,2,3", cfg.Levels)
	assert.Equal(t, "pdftotext", cfg.PDFToText)
	assert.Empty(t, cfg.PDFPath)
	assert.False(t, cfg.Publish)
	assert.False(t, cfg.DryRun)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("VOCABGEN_LEVELS", "4-6")
	t.Setenv("VOCABGEN_PUBLISH", "true")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "4-6", cfg.Levels)
	assert.True(t, cfg.Publish)
}

func TestLoadConfig_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocabgen.yaml")
	yaml := "pdf_path: /data/hsk.pdf\nlevels: \"7-9\"\noutput_path: out.json\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/hsk.pdf", cfg.PDFPath)
	assert.Equal(t, "7-9", cfg.Levels)
	assert.Equal(t, "out.json", cfg.OutputPath)
	assert.Equal(t, "cedict_1_0_ts_utf-8_mdbg.txt.gz", cfg.DictionaryPath, "defaults still apply")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "not found")
}

func TestDatasetSlug(t *testing.T) {
	assert.Equal(t, "hskv3elementary", DatasetSlug("elementary"))
	assert.Equal(t, "hskv3advanced", DatasetSlug("advanced"))
}
