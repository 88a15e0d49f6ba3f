package domain

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ScriptArtifact is the generated, executable script.
type ScriptArtifact struct {
	// Header holds the shebang and preamble lines.
	Header []string

	// Lines holds one shell command per emitted change, runtime before dev.
	Lines []string

	// Changes is the number of emitted changes.
	Changes int

	// Executable is always true for a generated artifact.
	Executable bool
}

// Bytes renders the artifact. The output always ends with a newline.
func (a *ScriptArtifact) Bytes() []byte {
	var b strings.Builder
	for _, line := range a.Header {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for _, line := range a.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Digest returns the xxhash of the rendered artifact in hex.
func (a *ScriptArtifact) Digest() string {
	return strconv.FormatUint(xxhash.Sum64(a.Bytes()), 16)
}
