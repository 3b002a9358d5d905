package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Transcribe extracts the audio track from videoPath, runs whisper over it
// and returns the parsed transcript. Intermediate files are written to
// workDir and removed before returning.
func (t *implTranscriber) Transcribe(ctx context.Context, videoPath, workDir string) (*Result, error) {
	t.verifyOnce.Do(func() { t.verifyErr = t.verify() })
	if t.verifyErr != nil {
		return nil, t.verifyErr
	}

	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))

	audioPath := filepath.Join(workDir, base+"_audio.wav")
	if err := t.extractAudio(ctx, videoPath, audioPath); err != nil {
		return nil, err
	}
	defer t.removeTempFile(ctx, audioPath)

	outputPrefix := filepath.Join(workDir, base)
	jsonPath := outputPrefix + ".json"

	t.logger.Info(ctx, "Transcribing with %d threads: %s", t.cfg.Threads, audioPath)

	// -oj writes <prefix>.json with per-segment offsets in milliseconds.
	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", audioPath,
		"-oj",
		"-l", t.cfg.Language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"--output-file", outputPrefix,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}
	defer t.removeTempFile(ctx, jsonPath)

	result, err := loadResult(jsonPath)
	if err != nil {
		return nil, err
	}

	t.logger.Info(ctx, "Transcription completed: %d segments", len(result.Segments))
	return result, nil
}

// verify checks the whisper binary and model exist. Run once per process.
func (t *implTranscriber) verify() error {
	if _, err := os.Stat(t.cfg.BinaryPath); err != nil {
		return fmt.Errorf("whisper binary %s: %w", t.cfg.BinaryPath, err)
	}
	if _, err := os.Stat(t.cfg.ModelPath); err != nil {
		return fmt.Errorf("whisper model %s: %w", t.cfg.ModelPath, err)
	}
	return nil
}

// extractAudio converts the video's audio track to 16kHz mono WAV, the
// format whisper expects.
func (t *implTranscriber) extractAudio(ctx context.Context, videoPath, audioPath string) error {
	t.logger.Info(ctx, "Extracting audio: %s", videoPath)

	args := []string{
		"-y",
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		audioPath,
	}

	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	return nil
}

func (t *implTranscriber) removeTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		t.logger.Warn(ctx, "Failed to remove temp file %s: %v", path, err)
	}
}

// whisperSegment mirrors one entry of whisper.cpp's JSON transcription
// array. Offsets are milliseconds from the start of the audio.
type whisperSegment struct {
	Offsets struct {
		From int64 `json:"from"`
		To   int64 `json:"to"`
	} `json:"offsets"`
	Text string `json:"text"`
}

type whisperPayload struct {
	Transcription []whisperSegment `json:"transcription"`
}

func loadResult(jsonPath string) (*Result, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}
	return parseResult(data)
}

func parseResult(data []byte) (*Result, error) {
	var payload whisperPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	result := &Result{
		Segments: make([]Segment, 0, len(payload.Transcription)),
	}

	var parts []string
	for _, seg := range payload.Transcription {
		result.Segments = append(result.Segments, Segment{
			Start: float64(seg.Offsets.From) / 1000,
			End:   float64(seg.Offsets.To) / 1000,
			Text:  seg.Text,
		})
		if text := strings.TrimSpace(seg.Text); text != "" {
			parts = append(parts, text)
		}
	}
	result.Text = strings.Join(parts, " ")

	return result, nil
}
