// Package app holds process bootstrap shared by the commands.
package app

import (
	"fmt"
	"log/slog"

	"github.com/anukauchika/hskvocab/internal/config"
)

// Bootstrap loads the shared configuration from path (empty means
// CONFIG_PATH or ./config.yaml), builds the default logger, and logs the
// startup line.
func Bootstrap(path string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("bootstrap: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("database", cfg.Database.Enabled()),
	)

	return cfg, logger, nil
}
