package domain

import "go.trai.ch/zerr"

// Failure categories. Every error surfaced by the generate pipeline belongs to exactly one.
var (
	// ErrMalformedManifest is returned when an input document is structurally invalid.
	ErrMalformedManifest = zerr.New("malformed manifest")

	// ErrUnparsableVersion is returned when a change carries an empty version string.
	ErrUnparsableVersion = zerr.New("unparsable version")

	// ErrIOFailure is returned when an input cannot be read or the output cannot be written.
	ErrIOFailure = zerr.New("io failure")
)

var (
	// ErrInvalidJSON is returned when a document is not valid JSON.
	ErrInvalidJSON = zerr.New("document is not valid JSON")

	// ErrNotAnObject is returned when the top-level document is not a JSON object.
	ErrNotAnObject = zerr.New("top-level document is not an object")

	// ErrInvalidSection is returned when a known section has the wrong type.
	ErrInvalidSection = zerr.New("invalid manifest section")

	// ErrMissingPackageName is returned when a lock package entry has no name.
	ErrMissingPackageName = zerr.New("package entry lacks a name")

	// ErrDuplicatePackage is returned when a package occurs twice in the same scope.
	ErrDuplicatePackage = zerr.New("duplicate package in scope")

	// ErrUnknownPolicy is returned when a constraint policy is not recognized.
	ErrUnknownPolicy = zerr.New("unknown constraint policy, expected 'caret', 'tilde' or 'exact'")

	// ErrSnapshotNotCaptured is returned when no before snapshot was given or captured.
	ErrSnapshotNotCaptured = zerr.New("no before snapshot given and none captured")

	// ErrFileReadFailed is returned when an input document cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrFileWriteFailed is returned when the script cannot be written.
	ErrFileWriteFailed = zerr.New("failed to write file")

	// ErrStoreReadFailed is returned when a captured snapshot cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read captured snapshot")

	// ErrStoreWriteFailed is returned when a snapshot cannot be captured.
	ErrStoreWriteFailed = zerr.New("failed to write captured snapshot")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingArguments is returned when generate is invoked without required paths.
	ErrMissingArguments = zerr.New("missing required path arguments")

	// ErrWatchFailed is returned when snapshot files cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch files")

	// ErrConflictingArguments is returned when a path is given both positionally and as a flag.
	ErrConflictingArguments = zerr.New("positional paths cannot be combined with path flags")
)
