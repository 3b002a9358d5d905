package pipeline

import (
	"github.com/SohamKamathi18/youtube/internal/analyzer"
	"github.com/SohamKamathi18/youtube/internal/transcriber"
)

// State is a pipeline run's position in the stage sequence.
type State string

const (
	StateIdle        State = "idle"
	StateUploaded    State = "uploaded"
	StateTranscribed State = "transcribed"
	StateAnalyzed    State = "analyzed"
	StateMastered    State = "mastered"
	StateShorted     State = "shorted"
	StateComplete    State = "complete"
	StateFailed      State = "failed"
)

// Run is the record of one end-to-end invocation. Artifact fields move from
// absent to present as stages complete and are never rolled back; nothing
// here survives past the run.
type Run struct {
	ID       string
	Filename string

	State       State
	FailedStage Stage

	InputPath    string
	Transcript   *transcriber.Result
	SubtitlePath string
	Metadata     *analyzer.Metadata
	MasterPath   string
	ShortPath    string
}
