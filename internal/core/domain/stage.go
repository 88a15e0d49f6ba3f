package domain

import (
	"errors"
	"strings"
)

// Stage names a step of the generate pipeline.
type Stage string

const (
	// StageRead reads an input document.
	StageRead Stage = "read"
	// StageLoad parses an input document into a snapshot.
	StageLoad Stage = "load"
	// StageGenerate renders the script.
	StageGenerate Stage = "generate"
	// StageWrite writes the script to the output path.
	StageWrite Stage = "write"
)

// Exit codes returned by the requiregen binary.
const (
	ExitOK                = 0
	ExitFailure           = 1
	ExitMalformedManifest = 2
	ExitUnparsableVersion = 3
	ExitIOFailure         = 4
)

// StageError reports the failing stage and path of a pipeline run.
// Kind is one of ErrMalformedManifest, ErrUnparsableVersion or ErrIOFailure.
type StageError struct {
	Stage Stage
	Path  string
	Kind  error
	Err   error
}

// NewStageError creates a StageError.
func NewStageError(stage Stage, path string, kind, err error) *StageError {
	return &StageError{Stage: stage, Path: path, Kind: kind, Err: err}
}

// Error renders a single diagnostic line.
func (e *StageError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Stage))
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if e.Err != nil {
		cause := strings.TrimPrefix(e.Err.Error(), e.Kind.Error())
		cause = strings.TrimPrefix(cause, ": ")
		if cause != "" {
			b.WriteString(": ")
			b.WriteString(strings.ReplaceAll(cause, "\n", "; "))
		}
	}
	return b.String()
}

// Message returns the stage, path and category without the cause.
func (e *StageError) Message() string {
	if e.Path == "" {
		return string(e.Stage) + ": " + e.Kind.Error()
	}
	return string(e.Stage) + " " + e.Path + ": " + e.Kind.Error()
}

// Unwrap exposes both the category and the cause to errors.Is / errors.As.
func (e *StageError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrMalformedManifest):
		return ExitMalformedManifest
	case errors.Is(err, ErrUnparsableVersion):
		return ExitUnparsableVersion
	case errors.Is(err, ErrIOFailure):
		return ExitIOFailure
	default:
		return ExitFailure
	}
}
