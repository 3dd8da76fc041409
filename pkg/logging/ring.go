// Package logging configures the console's structured logger and keeps a
// bounded in-memory record of recent entries for "show log".
package logging

import (
	"sync"
)

// Ring is a fixed-capacity buffer of formatted log lines. Once full, each
// append evicts the oldest line.
type Ring struct {
	mu    sync.Mutex
	lines []string
	next  int
	full  bool
}

// NewRing returns a ring holding at most capacity lines.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{lines: make([]string, capacity)}
}

// Append records one line, evicting the oldest if the ring is full.
func (r *Ring) Append(line string) {
	r.mu.Lock()
	r.lines[r.next] = line
	r.next = (r.next + 1) % len(r.lines)
	if r.next == 0 {
		r.full = true
	}
	r.mu.Unlock()
}

// Len returns the number of lines currently held.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.full {
		return len(r.lines)
	}
	return r.next
}

// Tail returns up to n of the most recent lines, oldest first. n <= 0
// returns everything held.
func (r *Ring) Tail(n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	size := r.next
	start := 0
	if r.full {
		size = len(r.lines)
		start = r.next
	}
	if n <= 0 || n > size {
		n = size
	}

	out := make([]string, 0, n)
	for i := size - n; i < size; i++ {
		out = append(out, r.lines[(start+i)%len(r.lines)])
	}
	return out
}
