package executor

import (
	"context"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	exec := New()

	out, err := exec.Execute(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("Execute() output = %q, want %q", out, "hello")
	}
}

func TestExecuteMissingBinary(t *testing.T) {
	exec := New()

	if _, err := exec.Execute(context.Background(), "definitely-not-a-real-binary"); err == nil {
		t.Error("Execute() should fail for a missing binary")
	}
}

func TestExecuteCancelled(t *testing.T) {
	exec := New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := exec.Execute(ctx, "sleep", "5"); err == nil {
		t.Error("Execute() should fail when context is already cancelled")
	}
}
