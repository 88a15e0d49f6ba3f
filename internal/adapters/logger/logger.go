// Package logger implements ports.Logger on top of log/slog.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/requiregen/internal/core/ports"
)

// messager is an error that reports its own message without the chain.
// zerr.Error and domain.StageError both implement it.
type messager interface {
	Message() string
}

// metadataCarrier is an error with structured fields, such as zerr.Error.
type metadataCarrier interface {
	Metadata() map[string]any
}

// ErrorEntry is one level of a rendered error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	verbose  bool
	output   io.Writer
}

// New creates a Logger writing pretty output to os.Stderr.
func New() ports.Logger {
	l := &Logger{output: os.Stderr}
	l.rebuild()
	return l
}

// SetOutput updates the output destination, keeping the current mode.
// A nil writer means os.Stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty output.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetVerbose makes pretty error output include the cause chain and metadata.
// Otherwise an error is a single line.
func (l *Logger) SetVerbose(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.verbose = enable
}

// rebuild must be called with mu held.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(l.output, opts)
	} else {
		handler = NewPrettyHandler(l.output, opts)
	}
	l.logger = slog.New(handler)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err as one "Error:" line, or with its cause chain and metadata in verbose mode.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err.Error())
		return
	}

	if !l.verbose {
		l.logger.Error("Error: " + strings.ReplaceAll(err.Error(), "\n", "; "))
		return
	}
	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// collectErrorEntries walks the chain of messager errors. The first error
// without a Message method ends the walk with its full Error() text.
// Entries that repeat the previous message, or carry no message, are folded
// into the previous entry.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	for current := err; current != nil; current = cause(current) {
		m, ok := current.(messager)
		if !ok {
			entries = appendEntry(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
			break
		}

		entry := ErrorEntry{Message: m.Message(), Metadata: pending}
		if mc, ok := current.(metadataCarrier); ok {
			entry.Metadata = mergeMetadata(pending, mc.Metadata())
		}
		pending = nil

		if entry.Message == "" {
			pending = entry.Metadata
			continue
		}
		entries = appendEntry(entries, entry)
	}

	return entries
}

func appendEntry(entries []ErrorEntry, entry ErrorEntry) []ErrorEntry {
	if n := len(entries); n > 0 {
		prev := &entries[n-1]
		if prev.Message == entry.Message || strings.HasSuffix(prev.Message, ": "+entry.Message) {
			if len(entry.Metadata) > 0 {
				prev.Metadata = mergeMetadata(prev.Metadata, entry.Metadata)
			}
			return entries
		}
	}
	return append(entries, entry)
}

// cause returns the next error in the chain. For errors joining several
// causes the last one is followed.
func cause(err error) error {
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return u.Unwrap()
	case interface{ Unwrap() []error }:
		errs := u.Unwrap()
		if len(errs) == 0 {
			return nil
		}
		return errs[len(errs)-1]
	default:
		return nil
	}
}

func mergeMetadata(a, b map[string]any) map[string]any {
	if a == nil {
		return b
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// formatErrorEntries renders entries as an "Error:" line followed by a
// "Caused by:" list.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			lines = append(lines, formatMetadata(entry.Metadata, "       ")...)
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
		lines = append(lines, formatMetadata(entry.Metadata, "      ")...)
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(meta map[string]any, indent string) []string {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, meta[k]))
	}
	return lines
}
