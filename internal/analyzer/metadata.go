package analyzer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnavailable marks analysis failures the pipeline treats as "no
// metadata": service errors, non-JSON replies, missing keys.
var ErrUnavailable = errors.New("analysis unavailable")

// ErrInvalidViralSegment marks a reply whose viral segment has no positive
// duration.
var ErrInvalidViralSegment = errors.New("invalid viral segment")

// ViralSegment is the model-selected clip range, in whole seconds.
type ViralSegment struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Duration returns the clip length in seconds.
func (v ViralSegment) Duration() int {
	return v.End - v.Start
}

// Metadata is the structured analysis of one transcript.
type Metadata struct {
	Description          string       `json:"description"`
	ThumbnailPrompt      string       `json:"thumbnail_prompt"`
	ThumbnailTextOverlay string       `json:"thumbnail_text_overlay"`
	ViralSegment         ViralSegment `json:"viral_segment"`
}

// parseMetadata turns a raw model reply into Metadata. The reply is not
// contractually bare JSON, so markdown code fences are stripped before
// parsing.
func parseMetadata(raw string) (*Metadata, error) {
	clean := stripFences(raw)
	if clean == "" {
		return nil, fmt.Errorf("%w: empty reply", ErrUnavailable)
	}

	var meta Metadata
	if err := json.Unmarshal([]byte(clean), &meta); err != nil {
		return nil, fmt.Errorf("%w: parse reply: %v", ErrUnavailable, err)
	}

	meta.Description = strings.TrimSpace(meta.Description)
	meta.ThumbnailPrompt = strings.TrimSpace(meta.ThumbnailPrompt)
	meta.ThumbnailTextOverlay = strings.TrimSpace(meta.ThumbnailTextOverlay)

	if meta.Description == "" {
		return nil, fmt.Errorf("%w: missing description", ErrUnavailable)
	}
	if meta.ThumbnailPrompt == "" {
		return nil, fmt.Errorf("%w: missing thumbnail_prompt", ErrUnavailable)
	}
	if meta.ViralSegment == (ViralSegment{}) {
		return nil, fmt.Errorf("%w: missing viral_segment", ErrUnavailable)
	}
	if meta.ViralSegment.Duration() <= 0 {
		return nil, fmt.Errorf("%w: start=%d end=%d", ErrInvalidViralSegment,
			meta.ViralSegment.Start, meta.ViralSegment.End)
	}

	return &meta, nil
}

func stripFences(raw string) string {
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	return strings.TrimSpace(clean)
}
