// Package subtitle renders transcripts as SRT caption files.
package subtitle

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/SohamKamathi18/youtube/internal/transcriber"
)

// Write encodes the transcript as SRT and writes it to path. Encoding is
// deterministic: the same transcript always produces a byte-identical file.
func Write(result *transcriber.Result, path string) error {
	data, err := Encode(result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}
	return nil
}

// Encode renders the transcript segments as SRT cue blocks: a 1-based
// index, a timestamp range and the trimmed segment text, blank-line
// separated. Transcripts with malformed timing are rejected.
func Encode(result *transcriber.Result) ([]byte, error) {
	if err := result.Validate(); err != nil {
		return nil, err
	}

	var b strings.Builder
	for i, seg := range result.Segments {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n",
			i+1,
			FormatTimestamp(seg.Start),
			FormatTimestamp(seg.End),
			strings.TrimSpace(seg.Text),
		)
	}
	return []byte(b.String()), nil
}

// FormatTimestamp renders seconds as an SRT timestamp (HH:MM:SS,mmm).
// Whole seconds are floored; the fractional remainder becomes the
// millisecond field. Hours widen past two digits only beyond 99 hours.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	whole := int(seconds)
	millis := int(math.Round((seconds - float64(whole)) * 1000))
	if millis >= 1000 {
		whole++
		millis -= 1000
	}

	hours := whole / 3600
	minutes := (whole % 3600) / 60
	secs := whole % 60

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}
