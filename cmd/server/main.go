package main

import (
	"matchfilter/internal/analysis"
	"matchfilter/internal/config"
	"matchfilter/internal/engine"
	"matchfilter/internal/server"
)

// @title Match Filter API
// @version 1.0
// @description Conversation engagement scoring and timewaster classification service.
// @BasePath /
func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger
	logger := cfg.SetupLogger()

	// Bootstrap the filter configuration store with defaults
	store := engine.NewConfigStore(engine.DefaultConfig(), logger)

	// Build the scoring service
	service := engine.NewService(store, analysis.NewLexiconClassifier(), logger, cfg.FilterWorkers)

	// Create and initialize server
	srv := server.New(cfg, store, service, logger)
	srv.Initialize()

	// Start server
	if err := srv.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed to start")
	}
}
