package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/SohamKamathi18/youtube/internal/analyzer"
	"github.com/SohamKamathi18/youtube/internal/config"
	"github.com/SohamKamathi18/youtube/internal/logger"
	"github.com/SohamKamathi18/youtube/internal/pipeline"
	"github.com/SohamKamathi18/youtube/internal/renderer"
	"github.com/SohamKamathi18/youtube/internal/server"
	"github.com/SohamKamathi18/youtube/internal/transcriber"
	"github.com/SohamKamathi18/youtube/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	exec := executor.New()

	// The transcription engine and renderer are shared across requests;
	// the analyzer is bound to each request's API credential.
	trans := transcriber.New(cfg.Whisper, exec, log)
	rend := renderer.New(cfg.Render, exec, log)

	factory := func(apiKey string) pipeline.Coordinator {
		return pipeline.New(cfg, trans,
			analyzer.New([]string{apiKey}, cfg.Gemini.Model, log),
			rend, log)
	}

	srv := server.New(cfg, log, factory)
	if err := srv.Start(ctx); err != nil {
		log.Error(ctx, "Server error: %v", err)
		os.Exit(1)
	}

	log.Info(ctx, "Server stopped")
}

func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Uploads,
		cfg.Paths.Outputs,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
