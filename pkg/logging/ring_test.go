package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRingTail(t *testing.T) {
	r := NewRing(4)
	for i := 0; i < 3; i++ {
		r.Append(fmt.Sprintf("line %d", i))
	}

	if r.Len() != 3 {
		t.Errorf("Len: got %d", r.Len())
	}
	want := []string{"line 1", "line 2"}
	if diff := cmp.Diff(want, r.Tail(2)); diff != "" {
		t.Errorf("Tail mismatch (-want +got):\n%s", diff)
	}
}

func TestRingEviction(t *testing.T) {
	r := NewRing(3)
	for i := 0; i < 7; i++ {
		r.Append(fmt.Sprintf("line %d", i))
	}

	if r.Len() != 3 {
		t.Errorf("Len: got %d", r.Len())
	}
	want := []string{"line 4", "line 5", "line 6"}
	if diff := cmp.Diff(want, r.Tail(0)); diff != "" {
		t.Errorf("Tail mismatch (-want +got):\n%s", diff)
	}
}

func TestRingTailClampsCount(t *testing.T) {
	r := NewRing(8)
	r.Append("only")
	if got := r.Tail(100); len(got) != 1 || got[0] != "only" {
		t.Errorf("Tail: got %v", got)
	}
}

func TestRingHandlerRecordsEverything(t *testing.T) {
	ring := NewRing(16)
	// Base handler filters at error level; the ring still sees everything.
	base := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError})
	logger := slog.New(&ringHandler{base: base, ring: ring})

	logger.Info("hostname changed", "old", "a", "new", "b")
	logger.Error("fetch failed")

	lines := ring.Tail(0)
	if len(lines) != 2 {
		t.Fatalf("lines: got %d", len(lines))
	}
	if want := "hostname changed old=a new=b"; !contains(lines[0], want) {
		t.Errorf("line 0: got %q", lines[0])
	}
	if !contains(lines[0], "INFO") || !contains(lines[1], "ERROR") {
		t.Errorf("levels missing: %v", lines)
	}
}

func TestRingHandlerGroups(t *testing.T) {
	ring := NewRing(4)
	base := slog.NewTextHandler(io.Discard, nil)
	logger := slog.New(&ringHandler{base: base, ring: ring}).WithGroup("cmd")

	logger.Info("executed", "action", "show-config")

	lines := ring.Tail(1)
	if len(lines) != 1 || !contains(lines[0], "cmd.action=show-config") {
		t.Errorf("grouped attr: got %v", lines)
	}
}

func TestRingHandlerEnabled(t *testing.T) {
	h := &ringHandler{
		base: slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}),
		ring: NewRing(1),
	}
	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("ring handler must accept all levels")
	}
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
