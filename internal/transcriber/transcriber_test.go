package transcriber

import (
	"errors"
	"testing"
)

func TestParseResult(t *testing.T) {
	payload := []byte(`{
		"transcription": [
			{"offsets": {"from": 0, "to": 1200}, "text": " Hello world."},
			{"offsets": {"from": 1200, "to": 2500}, "text": " This is a test."}
		]
	}`)

	result, err := parseResult(payload)
	if err != nil {
		t.Fatalf("parseResult() error = %v", err)
	}

	if len(result.Segments) != 2 {
		t.Fatalf("Segments count = %d, want 2", len(result.Segments))
	}
	if result.Segments[0].Start != 0 || result.Segments[0].End != 1.2 {
		t.Errorf("segment 1 timing = (%v, %v), want (0, 1.2)", result.Segments[0].Start, result.Segments[0].End)
	}
	if result.Segments[1].Start != 1.2 || result.Segments[1].End != 2.5 {
		t.Errorf("segment 2 timing = (%v, %v), want (1.2, 2.5)", result.Segments[1].Start, result.Segments[1].End)
	}
	if result.Text != "Hello world. This is a test." {
		t.Errorf("Text = %q, want %q", result.Text, "Hello world. This is a test.")
	}
}

func TestParseResultMalformed(t *testing.T) {
	if _, err := parseResult([]byte("not json at all")); err == nil {
		t.Error("parseResult() should fail on non-JSON input")
	}
}

func TestParseResultEmpty(t *testing.T) {
	result, err := parseResult([]byte(`{"transcription": []}`))
	if err != nil {
		t.Fatalf("parseResult() error = %v", err)
	}
	if len(result.Segments) != 0 {
		t.Errorf("Segments count = %d, want 0", len(result.Segments))
	}
	if result.Text != "" {
		t.Errorf("Text = %q, want empty", result.Text)
	}
}

func TestResultValidate(t *testing.T) {
	tests := []struct {
		name    string
		result  Result
		wantErr bool
	}{
		{
			name: "valid segments",
			result: Result{Segments: []Segment{
				{Start: 0, End: 1.2, Text: "a"},
				{Start: 1.2, End: 2.5, Text: "b"},
			}},
			wantErr: false,
		},
		{
			name: "zero-length segment allowed",
			result: Result{Segments: []Segment{
				{Start: 3, End: 3, Text: "a"},
			}},
			wantErr: false,
		},
		{
			name: "end before start",
			result: Result{Segments: []Segment{
				{Start: 5, End: 4, Text: "a"},
			}},
			wantErr: true,
		},
		{
			name: "negative start",
			result: Result{Segments: []Segment{
				{Start: -1, End: 2, Text: "a"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.result.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidTiming) {
				t.Errorf("Validate() error should wrap ErrInvalidTiming, got %v", err)
			}
		})
	}
}
