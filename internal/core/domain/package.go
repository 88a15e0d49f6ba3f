package domain

import "strings"

// Scope classifies a dependency as required at runtime or only for development.
type Scope string

const (
	// ScopeRuntime marks a package declared in require / packages.
	ScopeRuntime Scope = "runtime"
	// ScopeDev marks a package declared in require-dev / packages-dev.
	ScopeDev Scope = "dev"
)

// Rank returns the emission order of the scope. Runtime packages come first.
func (s Scope) Rank() int {
	if s == ScopeDev {
		return 1
	}
	return 0
}

// String returns the scope name.
func (s Scope) String() string {
	return string(s)
}

// PackageEntry represents one declared or resolved dependency.
type PackageEntry struct {
	// Name is the package name in <vendor>/<package> form (e.g., "acme/widget").
	Name string

	// DeclaredConstraint is the version range as written by a human (e.g., "^1.0").
	// It is empty for lock-only input.
	DeclaredConstraint string

	// ResolvedVersion is the concrete installed version (e.g., "1.4.2").
	// It is empty for manifest-only input.
	ResolvedVersion string

	// Scope is the runtime / dev classification of the package.
	Scope Scope
}

// Key returns the identity of the entry within a snapshot.
func (e PackageEntry) Key() PackageKey {
	return PackageKey{Name: e.Name, Scope: e.Scope}
}

// Version returns the value used for diffing: the resolved version when known,
// otherwise the declared constraint.
func (e PackageEntry) Version() string {
	if e.ResolvedVersion != "" {
		return e.ResolvedVersion
	}
	return e.DeclaredConstraint
}

// PackageKey identifies a package within one scope of a snapshot.
type PackageKey struct {
	Name  string
	Scope Scope
}

// Less orders keys by scope rank, then byte-wise by name.
func (k PackageKey) Less(other PackageKey) bool {
	if k.Scope.Rank() != other.Scope.Rank() {
		return k.Scope.Rank() < other.Scope.Rank()
	}
	return k.Name < other.Name
}

// Compare is the three-way form of Less, suitable for slices.SortFunc.
func (k PackageKey) Compare(other PackageKey) int {
	if r := k.Scope.Rank() - other.Scope.Rank(); r != 0 {
		return r
	}
	return strings.Compare(k.Name, other.Name)
}

// IsPlatformPackage reports whether the name refers to a platform requirement
// (php, ext-*, lib-*, composer-plugin-api) rather than an installable package.
func IsPlatformPackage(name string) bool {
	return !strings.Contains(name, "/")
}
