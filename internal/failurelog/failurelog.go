// Package failurelog appends failed push runs to the failure log (logs.txt).
//
// Each record is one slog text line, for example:
//
//	time=2026-10-16T14:03:05.000+02:00 level=ERROR msg="push failed" operation="git commit" branch=master message="fix bug" error="nothing to commit, working tree clean"
//
// Values with spaces, quotes or newlines are quoted and escaped, so a record
// never spans lines. The file is opened in append mode for a single write and
// closed again; it is never rotated or truncated.
package failurelog

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Entry describes one failed run
type Entry struct {
	Operation  string
	Branch     string
	Message    string
	Diagnostic string
}

// Log is an append-only failure log at a fixed path
type Log struct {
	path string
	now  func() time.Time
}

// New creates a Log writing to path. The file is created on first Record.
func New(path string) *Log {
	return &Log{path: path, now: time.Now}
}

// Path returns the log file location
func (l *Log) Path() string {
	return l.path
}

// Record appends entry as one line
func (l *Log) Record(ctx context.Context, entry Entry) error {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(a.Key, a.Value.Time().Format("2006-01-02T15:04:05.000Z07:00"))
			}
			return a
		},
	})

	record := slog.NewRecord(l.now(), slog.LevelError, "push failed", 0)
	record.AddAttrs(
		slog.String("operation", entry.Operation),
		slog.String("branch", entry.Branch),
		slog.String("message", entry.Message),
		slog.String("error", entry.Diagnostic),
	)
	if err := handler.Handle(ctx, record); err != nil {
		return fmt.Errorf("failed to format log record: %w", err)
	}

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open failure log: %w", err)
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write failure log: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close failure log: %w", err)
	}
	return nil
}
