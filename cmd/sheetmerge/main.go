package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"sheetmerge/internal/app"
	"sheetmerge/internal/config"
	"sheetmerge/internal/core"
	"sheetmerge/internal/logging"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err == nil {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config. Logs go to stderr so
	// the terminal UI owns stdout.
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"output_label", cfg.Output.Label,
		"sample_dir", cfg.Sample.Dir,
		"batch_timeout", cfg.Batch.Timeout,
	)

	service := core.NewService(cfg)

	p := tea.NewProgram(app.New(service, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("ui error", "error", err)
		os.Exit(1)
	}
}
