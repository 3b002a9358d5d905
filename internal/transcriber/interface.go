package transcriber

import "context"

// Transcriber converts a video's audio track into a timed transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, videoPath, workDir string) (*Result, error)
}
