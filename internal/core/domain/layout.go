package domain

import "path/filepath"

const (
	// StateDirName is the name of the internal project directory.
	StateDirName = ".requiregen"

	// SnapshotsDirName is the name of the captured snapshot directory.
	SnapshotsDirName = "snapshots"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "requiregen.yaml"

	// DefaultOutputName is the script path used when none is configured.
	DefaultOutputName = "update-deps.sh"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ScriptPerm is the permission of generated scripts (rwxr-xr-x).
	ScriptPerm = 0o755
)

// DefaultSnapshotsPath returns the default path for captured snapshots.
// It joins .requiregen and snapshots.
func DefaultSnapshotsPath() string {
	return filepath.Join(StateDirName, SnapshotsDirName)
}
