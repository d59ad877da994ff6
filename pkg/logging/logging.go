// Package logging sets up the checker's dual-sink log: every line goes to
// standard output and is appended to a log file in the working directory.
// Lines are `timestamp-LEVEL-message`, e.g.
//
//	2026-08-27 14:03:55,412-INFO-.venv folder exists.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// DefaultPath is the log file created in the project root.
const DefaultPath = "venv_checker.log"

// Setup initializes dual-sink logging and returns the logger plus a cleanup
// function that closes the log file. No rotation, no size limits.
func Setup(path string) (*slog.Logger, func(), error) {
	if path == "" {
		path = DefaultPath
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) //nolint:gosec // intentional: log file in project root
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := New(io.MultiWriter(os.Stdout, file))
	cleanup := func() { _ = file.Close() }
	return logger, cleanup, nil
}

// New returns a line-format logger writing to w. Split out from Setup so
// tests can log into a buffer.
func New(w io.Writer) *slog.Logger {
	return slog.New(&lineHandler{w: w, mu: &sync.Mutex{}})
}

// lineHandler renders records as `timestamp-LEVEL-message`, with any
// attributes appended as key=value pairs.
type lineHandler struct {
	w     io.Writer
	mu    *sync.Mutex
	attrs []slog.Attr
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	// Millisecond timestamp with comma separator, e.g. 2026-08-27 14:03:55,412
	b.WriteString(r.Time.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, ",%03d", r.Time.Nanosecond()/1e6)
	b.WriteString("-")
	b.WriteString(r.Level.String())
	b.WriteString("-")
	b.WriteString(r.Message)

	for _, attr := range h.attrs {
		fmt.Fprintf(&b, " %s=%v", attr.Key, attr.Value)
	}
	r.Attrs(func(attr slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", attr.Key, attr.Value)
		return true
	})
	b.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &lineHandler{w: h.w, mu: h.mu, attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)}
}

func (h *lineHandler) WithGroup(string) slog.Handler {
	return h
}
