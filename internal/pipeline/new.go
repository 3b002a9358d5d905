package pipeline

import (
	"github.com/SohamKamathi18/youtube/internal/analyzer"
	"github.com/SohamKamathi18/youtube/internal/config"
	"github.com/SohamKamathi18/youtube/internal/logger"
	"github.com/SohamKamathi18/youtube/internal/renderer"
	"github.com/SohamKamathi18/youtube/internal/transcriber"
)

type implCoordinator struct {
	cfg         *config.Config
	transcriber transcriber.Transcriber
	analyzer    analyzer.Analyzer
	renderer    renderer.Renderer
	logger      logger.Logger
}

// New creates a Coordinator. The collaborators are shared read-only across
// concurrent runs; per-run state lives entirely in the Run record.
func New(cfg *config.Config, t transcriber.Transcriber, a analyzer.Analyzer, r renderer.Renderer, log logger.Logger) Coordinator {
	return &implCoordinator{
		cfg:         cfg,
		transcriber: t,
		analyzer:    a,
		renderer:    r,
		logger:      log,
	}
}
