package transcriber

import (
	"errors"
	"fmt"
)

// ErrInvalidTiming marks transcripts whose segment timing is malformed.
var ErrInvalidTiming = errors.New("invalid segment timing")

// Segment is a time-bounded span of transcribed speech.
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// Result is a complete transcription: the full text plus ordered segments.
// It is immutable once produced; downstream stages only read it.
type Result struct {
	Text     string
	Segments []Segment
}

// Validate checks every segment's timing. A segment ending before it starts
// or starting before zero is rejected.
func (r *Result) Validate() error {
	for i, seg := range r.Segments {
		if seg.Start < 0 {
			return fmt.Errorf("%w: segment %d starts at %.3fs", ErrInvalidTiming, i+1, seg.Start)
		}
		if seg.End < seg.Start {
			return fmt.Errorf("%w: segment %d ends at %.3fs before start %.3fs", ErrInvalidTiming, i+1, seg.End, seg.Start)
		}
	}
	return nil
}
