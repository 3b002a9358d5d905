package renderer

import "context"

// Renderer produces the two output videos via ffmpeg.
type Renderer interface {
	// RenderMaster writes the mastered video: logo overlay (when a logo is
	// configured and present), burned-in subtitles and normalized audio.
	RenderMaster(ctx context.Context, videoPath, srtPath, outputPath string) error
	// RenderShort writes the 9:16 letterboxed clip trimmed to
	// [startSec, startSec+durationSec).
	RenderShort(ctx context.Context, videoPath, outputPath string, startSec, durationSec int) error
}
