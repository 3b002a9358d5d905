package pipeline

import "context"

// Coordinator sequences one full pipeline run: upload, transcription,
// analysis and the two renders. The returned Run always reflects the final
// state, including the failing stage when err is non-nil.
type Coordinator interface {
	Run(ctx context.Context, sourcePath string) (*Run, error)
}
