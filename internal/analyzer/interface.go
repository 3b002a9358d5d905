package analyzer

import "context"

// Analyzer derives structured content metadata from transcript text.
type Analyzer interface {
	Analyze(ctx context.Context, transcript string) (*Metadata, error)
}
