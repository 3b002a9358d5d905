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
	"github.com/SohamKamathi18/youtube/internal/transcriber"
	"github.com/SohamKamathi18/youtube/internal/watcher"
	"github.com/SohamKamathi18/youtube/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "AI video pipeline starting")
	log.Info(ctx, "Watching: %s", cfg.Paths.Input)
	log.Info(ctx, "Max concurrent runs: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	apiKeys := cfg.Gemini.APIKeys
	if len(apiKeys) == 0 {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			apiKeys = []string{key}
		}
	}
	if len(apiKeys) == 0 {
		log.Error(ctx, "No Gemini API key: set gemini.api_keys or GEMINI_API_KEY")
		os.Exit(1)
	}

	exec := executor.New()
	coord := pipeline.New(cfg,
		transcriber.New(cfg.Whisper, exec, log),
		analyzer.New(apiKeys, cfg.Gemini.Model, log),
		renderer.New(cfg.Render, exec, log),
		log,
	)

	handler := func(ctx context.Context, videoPath string) error {
		_, err := coord.Run(ctx, videoPath)
		return err
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- w.Start(ctx)
	}()

	log.Info(ctx, "Drop a video into %s to start a run. Press Ctrl+C to stop.", cfg.Paths.Input)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		if err != nil && err != context.Canceled {
			log.Error(ctx, "Watcher error: %v", err)
		}
	}

	cancel()
	log.Info(ctx, "Pipeline stopped")
}

// ensureDirectories creates the working directories if they don't exist.
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
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
