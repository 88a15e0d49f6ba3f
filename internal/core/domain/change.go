package domain

// ChangeKind classifies the difference detected for one package.
type ChangeKind string

const (
	// ChangeAdded means the package exists only in the after snapshot.
	ChangeAdded ChangeKind = "added"
	// ChangeRemoved means the package exists only in the before snapshot.
	ChangeRemoved ChangeKind = "removed"
	// ChangeUpgraded means the package version increased.
	ChangeUpgraded ChangeKind = "upgraded"
	// ChangeDowngraded means the package version decreased.
	ChangeDowngraded ChangeKind = "downgraded"
	// ChangeUnchanged means the package version is the same on both sides.
	ChangeUnchanged ChangeKind = "unchanged"
)

// ChangeKinds lists every kind in reporting order.
var ChangeKinds = []ChangeKind{
	ChangeAdded,
	ChangeUpgraded,
	ChangeDowngraded,
	ChangeRemoved,
	ChangeUnchanged,
}

// String returns the kind name.
func (k ChangeKind) String() string {
	return string(k)
}

// Emits reports whether records of this kind produce a script line.
func (k ChangeKind) Emits() bool {
	return k != ChangeUnchanged
}

// ChangeRecord is one detected difference between two snapshots.
type ChangeRecord struct {
	Name  string
	Scope Scope
	Kind  ChangeKind

	// FromVersion is empty when Kind is ChangeAdded.
	FromVersion string

	// ToVersion is empty when Kind is ChangeRemoved.
	ToVersion string
}

// Key returns the package identity of the record.
func (r ChangeRecord) Key() PackageKey {
	return PackageKey{Name: r.Name, Scope: r.Scope}
}
