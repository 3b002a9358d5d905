package renderer

import (
	"context"
	"fmt"
	"strconv"
)

// shortFilter scales to fit a 1080x1920 canvas preserving aspect ratio,
// then letterboxes to fill it, so the full horizontal frame stays visible
// inside the vertical one.
const shortFilter = "scale=1080:1920:force_original_aspect_ratio=decrease," +
	"pad=1080:1920:(ow-iw)/2:(oh-ih)/2"

// RenderShort trims [startSec, startSec+durationSec) out of the source and
// renders it as a vertical 9:16 clip. The audio stream is copied without
// re-encoding. Ranges beyond the source duration are left for ffmpeg to
// reject; that failure surfaces like any other render error.
func (r *implRenderer) RenderShort(ctx context.Context, videoPath, outputPath string, startSec, durationSec int) error {
	r.logger.Info(ctx, "Rendering short: %s [%ds +%ds]", videoPath, startSec, durationSec)

	args := []string{
		"-y",
		"-ss", strconv.Itoa(startSec),
		"-t", strconv.Itoa(durationSec),
		"-i", videoPath,
		"-filter:v", shortFilter,
		"-c:a", "copy",
		outputPath,
	}

	if _, err := r.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("%w: short: %w", ErrRenderFailed, err)
	}

	r.logger.Info(ctx, "Short render complete: %s", outputPath)
	return nil
}
