package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anukauchika/hskvocab/internal/config"
)

func TestNewLogger_SetsDefault(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"})

	if logger == nil {
		t.Fatal("logger should not be nil")
	}
	if slog.Default().Handler() != logger.Handler() {
		t.Error("NewLogger should set the returned logger as slog default")
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level    string
		wantSlog slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{" Warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, config.LogConfig{Level: tt.level, Format: "text"})

			logger.Log(context.Background(), tt.wantSlog, "should appear")
			if buf.Len() == 0 {
				t.Errorf("expected log output at level %v", tt.wantSlog)
			}

			buf.Reset()
			below := tt.wantSlog - 1
			logger.Log(context.Background(), below, "should be suppressed")
			if buf.Len() != 0 {
				t.Errorf("level %v should suppress level %v, got: %s", tt.wantSlog, below, buf.String())
			}
		})
	}
}

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "info", Format: "JSON"})
	logger.Info("built", slog.Int("items", 3))

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if m["msg"] != "built" {
		t.Errorf("msg = %v, want %q", m["msg"], "built")
	}
	if m["items"] != float64(3) {
		t.Errorf("items = %v, want 3", m["items"])
	}
	if _, ok := m["source"]; ok {
		t.Error("info level should not include source")
	}
}

func TestNewLogger_SourceOnlyAtDebug(t *testing.T) {
	var debugBuf, infoBuf bytes.Buffer

	newLogger(&debugBuf, config.LogConfig{Level: "debug", Format: "text"}).Info("hello")
	newLogger(&infoBuf, config.LogConfig{Level: "info", Format: "text"}).Info("hello")

	if !strings.Contains(debugBuf.String(), "source=") {
		t.Error("debug level should include source")
	}
	if strings.Contains(infoBuf.String(), "source=") {
		t.Error("info level should not include source")
	}
}

func TestBootstrap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: warn\n  format: json\n"), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	cfg, logger, err := Bootstrap(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "warn")
	}
	if logger == nil {
		t.Fatal("logger should not be nil")
	}

	if _, _, err := Bootstrap(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestBuildVersion(t *testing.T) {
	if v := BuildVersion(); !strings.HasPrefix(v, "vocabgen dev") {
		t.Errorf("BuildVersion() = %q", v)
	}
}
