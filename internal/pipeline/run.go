package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/SohamKamathi18/youtube/internal/subtitle"
)

// Run executes the full pipeline on sourcePath. Stages run strictly in
// order; the first failure halts the run and no stage is retried. Partial
// artifacts written before the failing stage are left on disk.
func (c *implCoordinator) Run(ctx context.Context, sourcePath string) (*Run, error) {
	run := &Run{
		ID:       uuid.NewString(),
		Filename: sanitizeFilename(filepath.Base(sourcePath)),
		State:    StateIdle,
	}

	c.logger.Info(ctx, "Starting pipeline run %s: %s", run.ID, sourcePath)

	// Idle -> Uploaded: persist the input into the working location.
	workPath, err := c.persistUpload(run, sourcePath)
	if err != nil {
		return c.fail(ctx, run, StageUpload, err)
	}
	run.InputPath = workPath
	run.State = StateUploaded

	outs := outputsFor(c.cfg.Paths.Outputs, run.Filename)

	// Uploaded -> Transcribed: run the engine, then derive the subtitle
	// file from the transcript.
	tctx, cancel := withTimeout(ctx, c.cfg.Timeouts.Transcribe.Std())
	transcript, err := c.transcriber.Transcribe(tctx, workPath, c.cfg.Paths.Temp)
	cancel()
	if err != nil {
		return c.fail(ctx, run, StageTranscribe, err)
	}
	if err := subtitle.Write(transcript, outs.Subtitle); err != nil {
		return c.fail(ctx, run, StageTranscribe, err)
	}
	run.Transcript = transcript
	run.SubtitlePath = outs.Subtitle
	run.State = StateTranscribed

	// Transcribed -> Analyzed: no metadata means no rendering at all.
	actx, cancel := withTimeout(ctx, c.cfg.Timeouts.Analyze.Std())
	metadata, err := c.analyzer.Analyze(actx, transcript.Text)
	cancel()
	if err != nil {
		return c.fail(ctx, run, StageAnalyze, err)
	}
	run.Metadata = metadata
	run.State = StateAnalyzed

	// Analyzed -> Mastered.
	mctx, cancel := withTimeout(ctx, c.cfg.Timeouts.Render.Std())
	err = c.renderer.RenderMaster(mctx, workPath, outs.Subtitle, outs.Master)
	cancel()
	if err != nil {
		return c.fail(ctx, run, StageMaster, err)
	}
	run.MasterPath = outs.Master
	run.State = StateMastered

	// Mastered -> Shorted: the viral duration is used directly as the clip
	// length.
	sctx, cancel := withTimeout(ctx, c.cfg.Timeouts.Render.Std())
	err = c.renderer.RenderShort(sctx, workPath, outs.Short,
		metadata.ViralSegment.Start, metadata.ViralSegment.Duration())
	cancel()
	if err != nil {
		return c.fail(ctx, run, StageShort, err)
	}
	run.ShortPath = outs.Short
	run.State = StateShorted

	run.State = StateComplete
	c.logger.Info(ctx, "Pipeline run %s complete: master=%s short=%s", run.ID, run.MasterPath, run.ShortPath)
	return run, nil
}

// persistUpload copies the source video into the uploads directory under a
// run-scoped name, so concurrent runs of identically named files never
// contend over the same working copy.
func (c *implCoordinator) persistUpload(run *Run, sourcePath string) (string, error) {
	workPath := filepath.Join(c.cfg.Paths.Uploads, run.ID+"_"+run.Filename)

	src, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("open source video: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(workPath)
	if err != nil {
		return "", fmt.Errorf("persist upload: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("persist upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("persist upload: %w", err)
	}

	return workPath, nil
}

func (c *implCoordinator) fail(ctx context.Context, run *Run, stage Stage, err error) (*Run, error) {
	run.State = StateFailed
	run.FailedStage = stage
	c.logger.Error(ctx, "Pipeline run %s failed at %s: %v", run.ID, stage, err)
	return run, &StageError{Stage: stage, Err: err}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
