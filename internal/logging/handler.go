// Package logging provides slog setup and a handler that records warnings
// and errors so commands can summarise them after a run.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Entry is a recorded WARN or ERROR log line.
type Entry struct {
	Time     time.Time
	Level    slog.Level
	Category string
	Message  string
}

// recorder is shared by a handler and all handlers derived from it.
type recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// RecordingHandler is a slog.Handler that wraps another handler and keeps
// WARN and ERROR records in memory.
type RecordingHandler struct {
	inner slog.Handler
	rec   *recorder
	level slog.Level // Minimum level to record (default: WARN)
	attrs []slog.Attr
}

// NewRecordingHandler creates a handler that records WARN and above.
func NewRecordingHandler(inner slog.Handler) *RecordingHandler {
	return NewRecordingHandlerWithLevel(inner, slog.LevelWarn)
}

// NewRecordingHandlerWithLevel creates a RecordingHandler with a custom minimum level.
func NewRecordingHandlerWithLevel(inner slog.Handler, level slog.Level) *RecordingHandler {
	return &RecordingHandler{
		inner: inner,
		rec:   &recorder{},
		level: level,
	}
}

// Enabled implements slog.Handler. Records at the recording level are
// accepted even when the inner handler would drop them.
func (h *RecordingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level) || level >= h.level
}

// Handle implements slog.Handler.
func (h *RecordingHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.level {
		h.record(r)
	}

	if !h.inner.Enabled(ctx, r.Level) {
		return nil
	}
	return h.inner.Handle(ctx, r)
}

// WithAttrs implements slog.Handler.
func (h *RecordingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &RecordingHandler{
		inner: h.inner.WithAttrs(attrs),
		rec:   h.rec,
		level: h.level,
		attrs: merged,
	}
}

// WithGroup implements slog.Handler.
func (h *RecordingHandler) WithGroup(name string) slog.Handler {
	return &RecordingHandler{
		inner: h.inner.WithGroup(name),
		rec:   h.rec,
		level: h.level,
		attrs: h.attrs,
	}
}

// Entries returns a copy of the recorded entries.
func (h *RecordingHandler) Entries() []Entry {
	h.rec.mu.Lock()
	defer h.rec.mu.Unlock()
	return append([]Entry(nil), h.rec.entries...)
}

// Count returns how many recorded entries are at or above the given level.
func (h *RecordingHandler) Count(level slog.Level) int {
	h.rec.mu.Lock()
	defer h.rec.mu.Unlock()
	n := 0
	for _, e := range h.rec.entries {
		if e.Level >= level {
			n++
		}
	}
	return n
}

// Reset drops all recorded entries.
func (h *RecordingHandler) Reset() {
	h.rec.mu.Lock()
	h.rec.entries = nil
	h.rec.mu.Unlock()
}

func (h *RecordingHandler) record(r slog.Record) {
	entry := Entry{
		Time:     r.Time,
		Level:    r.Level,
		Category: h.extractCategory(r),
		Message:  r.Message,
	}
	h.rec.mu.Lock()
	h.rec.entries = append(h.rec.entries, entry)
	h.rec.mu.Unlock()
}

// extractCategory looks for a "category" attribute on the record or the
// handler, falling back to a guess from the message.
func (h *RecordingHandler) extractCategory(r slog.Record) string {
	var category string

	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "category" {
			category = a.Value.String()
			return false
		}
		return true
	})
	if category != "" {
		return category
	}
	for _, a := range h.attrs {
		if a.Key == "category" {
			return a.Value.String()
		}
	}

	msg := strings.ToLower(r.Message)
	switch {
	case strings.Contains(msg, "link"):
		return CategoryLinks
	case strings.Contains(msg, "config") || strings.Contains(msg, "validation"):
		return CategoryConfig
	case strings.Contains(msg, "write") || strings.Contains(msg, "output"):
		return CategoryOutput
	default:
		return CategorySystem
	}
}

// Log categories.
const (
	CategoryConfig = "config"
	CategoryLinks  = "links"
	CategoryOutput = "output"
	CategorySystem = "system"
)

// ParseLevel maps a level name to a slog.Level, defaulting to INFO.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup installs a text logger on w as the slog default and returns the
// recording handler behind it.
func Setup(w io.Writer, level string) *RecordingHandler {
	text := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	rec := NewRecordingHandler(text)
	slog.SetDefault(slog.New(rec))
	return rec
}
