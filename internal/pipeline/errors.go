package pipeline

import (
	"errors"
	"fmt"
)

// Stage identifies the pipeline stage an error came from.
type Stage string

const (
	StageUpload     Stage = "upload"
	StageTranscribe Stage = "transcription"
	StageAnalyze    Stage = "analysis"
	StageMaster     Stage = "master"
	StageShort      Stage = "short"
)

// StageError wraps a stage-local failure with the stage's identity so the
// caller can report which stage halted the run.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// FailedStage extracts the failing stage from a pipeline error.
func FailedStage(err error) (Stage, bool) {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Stage, true
	}
	return "", false
}
