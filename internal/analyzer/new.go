package analyzer

import (
	"sync"

	"github.com/SohamKamathi18/youtube/internal/logger"
)

type implAnalyzer struct {
	model  string
	logger logger.Logger

	mu         sync.Mutex
	apiKeys    []string
	currentKey int
}

// New creates an Analyzer that rotates through the supplied Gemini API keys
// when one is rate limited.
func New(apiKeys []string, model string, log logger.Logger) Analyzer {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &implAnalyzer{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}
