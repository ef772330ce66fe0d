package telemetry

import (
	"io"
	"os"
	"sort"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
)

// JSONLogger writes one JSON object per event. A logger built with an empty
// path discards everything.
type JSONLogger struct {
	mu     *sync.Mutex
	w      io.WriteCloser
	logger *clog.Logger
}

func NewJSONLogger(path string) (*JSONLogger, error) {
	if path == "" {
		return newJSONLogger(nopCloser{Writer: io.Discard}), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return newJSONLogger(f), nil
}

// NewWriterLogger logs to w without taking ownership of it.
func NewWriterLogger(w io.Writer) *JSONLogger {
	return newJSONLogger(nopCloser{Writer: w})
}

func newJSONLogger(w io.WriteCloser) *JSONLogger {
	logger := clog.NewWithOptions(w, clog.Options{
		Formatter:       clog.JSONFormatter,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           clog.DebugLevel,
	})
	return &JSONLogger{mu: &sync.Mutex{}, w: w, logger: logger}
}

// With returns a logger that adds fields to every event.
func (l *JSONLogger) With(fields map[string]any) *JSONLogger {
	if l == nil || l.logger == nil {
		return l
	}
	return &JSONLogger{mu: l.mu, w: l.w, logger: l.logger.With(keyvals(fields)...)}
}

// Charm returns a charm logger that writes JSON to the same sink, for
// packages that log through the charm API directly.
func (l *JSONLogger) Charm(prefix string, level clog.Level) *clog.Logger {
	var w io.Writer = io.Discard
	if l != nil && l.w != nil {
		w = lockedWriter{mu: l.mu, w: l.w}
	}
	return clog.NewWithOptions(w, clog.Options{
		Formatter:       clog.JSONFormatter,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           level,
		Prefix:          prefix,
	})
}

func (l *JSONLogger) Debug(msg string, fields map[string]any) {
	l.log(clog.DebugLevel, msg, fields)
}

func (l *JSONLogger) Info(msg string, fields map[string]any) {
	l.log(clog.InfoLevel, msg, fields)
}

func (l *JSONLogger) Error(msg string, fields map[string]any) {
	l.log(clog.ErrorLevel, msg, fields)
}

func (l *JSONLogger) log(level clog.Level, msg string, fields map[string]any) {
	if l == nil || l.logger == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Log(level, msg, keyvals(fields)...)
}

func (l *JSONLogger) Close() error {
	if l == nil || l.w == nil {
		return nil
	}
	return l.w.Close()
}

// keyvals flattens fields in key order so log lines are stable.
func keyvals(fields map[string]any) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		out = append(out, k, fields[k])
	}
	return out
}

type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (lw lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
