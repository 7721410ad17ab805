package app

import (
	"log/slog"
	"os"
)

// NewLogger builds the process-wide slog.Logger. Document generation runs
// behind JSON log aggregation in deployment, so LOG_FORMAT=json selects the
// JSON handler; anything else gets the text handler for local reading.
// AddSource stays on in both modes.
func NewLogger(cfg *Config) *slog.Logger {
	if cfg != nil && cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{AddSource: true}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{AddSource: true}))
}
