package renderer

import (
	"context"
	"fmt"
	"os"
	"strings"
)

const subtitleStyle = "Fontname=Arial,FontSize=12,PrimaryColour=&H000000," +
	"BackColour=&HFFFFFF,BorderStyle=3,Outline=0,MarginV=20"

const loudnormFilter = "loudnorm=I=-16:TP=-1.5:LRA=11"

// RenderMaster produces the mastered video. When the configured logo file
// exists it is scaled to 150px width and overlaid bottom-right with a 20px
// margin; subtitles are always burned in and the audio track is loudness
// normalized. A missing logo degrades to the subtitle+loudnorm graph.
func (r *implRenderer) RenderMaster(ctx context.Context, videoPath, srtPath, outputPath string) error {
	logoPath := r.cfg.LogoPath
	withLogo := logoPath != "" && fileExists(logoPath)
	if logoPath != "" && !withLogo {
		r.logger.Warn(ctx, "Logo %s not found, skipping overlay", logoPath)
	}

	r.logger.Info(ctx, "Mastering video (logo=%t): %s", withLogo, videoPath)

	args := []string{"-y", "-i", videoPath}
	if withLogo {
		args = append(args, "-i", logoPath)
	}
	args = append(args,
		"-filter_complex", masterFilterGraph(srtPath, withLogo),
		"-map", "[v_out]",
		"-map", "[a_out]",
		outputPath,
	)

	if _, err := r.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("%w: master: %w", ErrRenderFailed, err)
	}

	r.logger.Info(ctx, "Master render complete: %s", outputPath)
	return nil
}

func masterFilterGraph(srtPath string, withLogo bool) string {
	subtitles := fmt.Sprintf("subtitles='%s':force_style='%s'", escapeFilterPath(srtPath), subtitleStyle)

	if withLogo {
		return "[1:v]scale=150:-1[v_logo_scaled];" +
			"[0:v][v_logo_scaled]overlay=main_w-overlay_w-20:main_h-overlay_h-20[v_logo];" +
			"[v_logo]" + subtitles + "[v_out];" +
			"[0:a]" + loudnormFilter + "[a_out]"
	}
	return "[0:v]" + subtitles + "[v_out];" +
		"[0:a]" + loudnormFilter + "[a_out]"
}

// escapeFilterPath makes a path safe inside an ffmpeg filter string, where
// backslashes and colons are meaningful.
func escapeFilterPath(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	return strings.ReplaceAll(path, ":", "\\:")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
