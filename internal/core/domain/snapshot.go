package domain

import (
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Label marks which side of a diff a snapshot represents.
type Label string

const (
	// LabelBefore is the snapshot taken before the update.
	LabelBefore Label = "before"
	// LabelAfter is the snapshot taken after the update.
	LabelAfter Label = "after"
)

// String returns the label text.
func (l Label) String() string {
	return string(l)
}

// Snapshot represents a complete manifest state at one point in time.
// It is constructed once and never modified afterwards.
type Snapshot struct {
	label   Label
	entries map[PackageKey]PackageEntry
	keys    []PackageKey
}

// NewSnapshot builds an immutable snapshot from the given entries.
// Returns ErrDuplicatePackage if a (name, scope) pair occurs more than once.
func NewSnapshot(label Label, entries []PackageEntry) (*Snapshot, error) {
	s := &Snapshot{
		label:   label,
		entries: make(map[PackageKey]PackageEntry, len(entries)),
		keys:    make([]PackageKey, 0, len(entries)),
	}

	for _, entry := range entries {
		key := entry.Key()
		if _, exists := s.entries[key]; exists {
			err := zerr.With(ErrDuplicatePackage, "package", entry.Name)
			err = zerr.With(err, "scope", entry.Scope.String())
			return nil, err
		}
		s.entries[key] = entry
		s.keys = append(s.keys, key)
	}

	slices.SortFunc(s.keys, PackageKey.Compare)

	return s, nil
}

// Label returns the side of the diff this snapshot represents.
func (s *Snapshot) Label() Label {
	return s.label
}

// Len returns the number of packages in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.keys)
}

// Lookup returns the entry stored under key.
func (s *Snapshot) Lookup(key PackageKey) (PackageEntry, bool) {
	entry, ok := s.entries[key]
	return entry, ok
}

// Keys returns the snapshot keys ordered by scope, then name.
// The returned slice is a copy.
func (s *Snapshot) Keys() []PackageKey {
	return slices.Clone(s.keys)
}

// Entries returns the entries ordered like Keys.
func (s *Snapshot) Entries() []PackageEntry {
	out := make([]PackageEntry, 0, len(s.keys))
	for _, key := range s.keys {
		out = append(out, s.entries[key])
	}
	return out
}

// Fingerprint returns a stable digest of the snapshot contents.
// Two snapshots with the same entries have the same fingerprint regardless of label.
func (s *Snapshot) Fingerprint() string {
	digest := xxhash.New()
	for _, key := range s.keys {
		entry := s.entries[key]
		for _, field := range []string{
			entry.Scope.String(),
			entry.Name,
			entry.DeclaredConstraint,
			entry.ResolvedVersion,
		} {
			_, _ = digest.WriteString(field)
			_, _ = digest.Write([]byte{0})
		}
	}
	return strconv.FormatUint(digest.Sum64(), 16)
}
