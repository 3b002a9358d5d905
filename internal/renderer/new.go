package renderer

import (
	"errors"

	"github.com/SohamKamathi18/youtube/internal/config"
	"github.com/SohamKamathi18/youtube/internal/logger"
	"github.com/SohamKamathi18/youtube/pkg/executor"
)

// ErrRenderFailed marks an ffmpeg invocation that did not produce its
// output.
var ErrRenderFailed = errors.New("render failed")

type implRenderer struct {
	cfg      config.RenderConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Renderer shelling out to ffmpeg.
func New(cfg config.RenderConfig, exec executor.Executor, log logger.Logger) Renderer {
	return &implRenderer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
