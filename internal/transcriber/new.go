package transcriber

import (
	"sync"

	"github.com/SohamKamathi18/youtube/internal/config"
	"github.com/SohamKamathi18/youtube/internal/logger"
	"github.com/SohamKamathi18/youtube/pkg/executor"
)

type implTranscriber struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger

	// The engine is verified once on first use and shared read-only across
	// runs; concurrent runs reuse the same handle.
	verifyOnce sync.Once
	verifyErr  error
}

// New creates a Transcriber backed by a whisper.cpp binary. The binary and
// model are checked lazily on the first Transcribe call.
func New(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
