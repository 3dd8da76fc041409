package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// ringHandler is an slog.Handler that records every handled entry in a Ring
// in addition to a wrapped base handler (typically stderr).
type ringHandler struct {
	base   slog.Handler
	ring   *Ring
	attrs  []slog.Attr
	groups []string
}

// Setup installs the default logger: a text handler on stderr at the given
// level, mirrored into the returned ring.
func Setup(level slog.Level, ringSize int) *Ring {
	ring := NewRing(ringSize)
	base := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(&ringHandler{base: base, ring: ring}))
	return ring
}

// Enabled implements slog.Handler. The ring records every level; only the
// base handler filters.
func (h *ringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return true
}

// Handle implements slog.Handler.
func (h *ringHandler) Handle(ctx context.Context, r slog.Record) error {
	h.ring.Append(formatRecord(r, h.attrs, h.groups))
	if !h.base.Enabled(ctx, r.Level) {
		return nil
	}
	return h.base.Handle(ctx, r)
}

// WithAttrs implements slog.Handler.
func (h *ringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ringHandler{
		base:   h.base.WithAttrs(attrs),
		ring:   h.ring,
		attrs:  append(append([]slog.Attr{}, h.attrs...), attrs...),
		groups: h.groups,
	}
}

// WithGroup implements slog.Handler.
func (h *ringHandler) WithGroup(name string) slog.Handler {
	return &ringHandler{
		base:   h.base.WithGroup(name),
		ring:   h.ring,
		attrs:  h.attrs,
		groups: append(append([]string{}, h.groups...), name),
	}
}

// formatRecord produces a compact text representation of a log record.
func formatRecord(r slog.Record, preAttrs []slog.Attr, groups []string) string {
	var b strings.Builder
	b.WriteString(r.Time.Format(time.RFC3339))
	b.WriteByte(' ')
	b.WriteString(r.Level.String())
	b.WriteByte(' ')
	b.WriteString(r.Message)

	for _, a := range preAttrs {
		fmt.Fprintf(&b, " %s=%s", a.Key, a.Value.String())
	}

	r.Attrs(func(a slog.Attr) bool {
		key := a.Key
		if len(groups) > 0 {
			key = strings.Join(groups, ".") + "." + key
		}
		fmt.Fprintf(&b, " %s=%s", key, a.Value.String())
		return true
	})

	return b.String()
}
