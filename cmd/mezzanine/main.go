// Package main is the entry point for the mezzanine walkthrough viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/mezzanine/internal/app"
	"github.com/Faultbox/mezzanine/internal/config"
	"github.com/Faultbox/mezzanine/internal/logger"
	"github.com/Faultbox/mezzanine/internal/scene"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Mezzanine Walkthrough ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Load the scene up front; a missing part means nothing can render
	registry, err := scene.Load(cfg.Scene.PartPaths())
	if err != nil {
		logger.Error("failed to load scene", zap.Error(err))
		os.Exit(1)
	}

	a, err := app.New(app.Config{
		Title:             "Mezzanine",
		Width:             cfg.Graphics.Width,
		Height:            cfg.Graphics.Height,
		Fullscreen:        cfg.Graphics.Fullscreen,
		VSync:             cfg.Graphics.VSync,
		MoveStep:          cfg.Controls.MoveStep,
		LookStepDegrees:   cfg.Controls.LookStepDegrees,
		PointerEdgeMargin: cfg.Controls.PointerEdgeMargin,
	}, registry)
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("walkthrough error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("walkthrough closed normally")
}
