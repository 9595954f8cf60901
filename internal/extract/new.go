package extract

import (
	"darkwave-task-manager/pkg/llmprovider"
	pkgLog "darkwave-task-manager/pkg/log"
)

const (
	// Low temperature keeps field extraction consistent.
	defaultTemperature = 0.3
	defaultMaxTokens   = 1024
)

type implExtractor struct {
	l           pkgLog.Logger
	llm         *llmprovider.Manager
	temperature float64
	maxTokens   int
}

// New creates a new Extractor backed by the LLM provider manager.
func New(l pkgLog.Logger, llm *llmprovider.Manager) Extractor {
	return &implExtractor{
		l:           l,
		llm:         llm,
		temperature: defaultTemperature,
		maxTokens:   defaultMaxTokens,
	}
}
