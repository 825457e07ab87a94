package main

import (
	"log/slog"
	"time"

	"github.com/soocke/contour-annotator-go/app"
	"github.com/soocke/contour-annotator-go/config"
	"github.com/soocke/contour-annotator-go/debug"
)

func main() {
	// Bootstrap logger until config decides the level.
	logger := NewLogger(slog.LevelInfo)

	if err := config.LoadDotEnv(); err != nil {
		logger.Warn("dotenv load failed", "error", err)
	}
	cfgPath := config.Path()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", cfgPath, "error", err)
	}
	cfg.ApplyEnv()
	_ = cfg.Validate()

	if cfg.Debug {
		logger = NewLogger(slog.LevelDebug)
		debug.StartGoroutineLogger(5*time.Second, logger)
		debug.StartMemLogger(5*time.Second, logger)
	}
	logger.Info("annotator starting", "folder", cfg.Folder, "output", cfg.OutputPath)

	annotator := app.NewAnnotator("Contour Annotator", 360, 120, cfg, logger)
	annotator.Start()
}
