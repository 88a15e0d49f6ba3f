// Package manifest loads manifest- and lock-shaped documents into snapshots.
package manifest

import (
	"bytes"
	"encoding/json"

	"go.trai.ch/requiregen/internal/core/domain"
	"go.trai.ch/zerr"
)

// Shape is the detected layout of an input document.
type Shape string

const (
	// ShapeManifest is a composer.json style document (require / require-dev maps).
	ShapeManifest Shape = "manifest"
	// ShapeLock is a composer.lock style document (packages / packages-dev arrays).
	ShapeLock Shape = "lock"
)

const (
	sectionRequire     = "require"
	sectionRequireDev  = "require-dev"
	sectionPackages    = "packages"
	sectionPackagesDev = "packages-dev"
)

// document is the top-level object of either shape. Unknown fields are kept raw and ignored.
type document map[string]json.RawMessage

// lockPackage is one entry of a packages / packages-dev array.
type lockPackage struct {
	Name    *string `json:"name"`
	Version string  `json:"version"`
}

// DetectShape parses the top level of a document and reports its shape.
func DetectShape(data []byte) (Shape, error) {
	doc, err := parseDocument(data)
	if err != nil {
		return "", err
	}
	return doc.shape(), nil
}

// Load parses a manifest- or lock-shaped document into a snapshot labelled with label.
// Platform requirements (names without a vendor) are skipped.
func Load(label domain.Label, data []byte) (*domain.Snapshot, error) {
	doc, err := parseDocument(data)
	if err != nil {
		return nil, err
	}

	declared, err := doc.requirements()
	if err != nil {
		return nil, err
	}

	var entries []domain.PackageEntry
	switch doc.shape() {
	case ShapeLock:
		entries, err = doc.lockEntries(declared)
		if err != nil {
			return nil, err
		}
	default:
		entries = declared
	}

	snapshot, err := domain.NewSnapshot(label, entries)
	if err != nil {
		return nil, zerr.With(domain.ErrMalformedManifest, "reason", err.Error())
	}
	return snapshot, nil
}

func parseDocument(data []byte) (document, error) {
	trimmed := bytes.TrimSpace(data)
	if !json.Valid(trimmed) {
		return nil, zerr.With(domain.ErrMalformedManifest, "reason", domain.ErrInvalidJSON.Error())
	}
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, zerr.With(domain.ErrMalformedManifest, "reason", domain.ErrNotAnObject.Error())
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMalformedManifest.Error()), "reason", domain.ErrInvalidJSON.Error())
	}
	return doc, nil
}

func (d document) shape() Shape {
	if d.has(sectionPackages) || d.has(sectionPackagesDev) {
		return ShapeLock
	}
	return ShapeManifest
}

// has reports whether a section is present and not empty.
// PHP encodes an empty map as [], so an empty array counts as absent.
func (d document) has(section string) bool {
	raw, ok := d[section]
	if !ok {
		return false
	}
	trimmed := bytes.TrimSpace(raw)
	return !bytes.Equal(trimmed, []byte("null")) && !bytes.Equal(trimmed, []byte("[]"))
}

// requirements reads require / require-dev into entries carrying declared constraints.
func (d document) requirements() ([]domain.PackageEntry, error) {
	var entries []domain.PackageEntry
	for _, sec := range []struct {
		name  string
		scope domain.Scope
	}{
		{sectionRequire, domain.ScopeRuntime},
		{sectionRequireDev, domain.ScopeDev},
	} {
		if !d.has(sec.name) {
			continue
		}

		var constraints map[string]string
		if err := json.Unmarshal(d[sec.name], &constraints); err != nil {
			return nil, invalidSection(sec.name, "expected an object of name to constraint strings")
		}

		for name, constraint := range constraints {
			if name == "" {
				return nil, invalidSection(sec.name, domain.ErrMissingPackageName.Error())
			}
			if domain.IsPlatformPackage(name) {
				continue
			}
			entries = append(entries, domain.PackageEntry{
				Name:               name,
				DeclaredConstraint: constraint,
				Scope:              sec.scope,
			})
		}
	}
	return entries, nil
}

// lockEntries reads packages / packages-dev. Declared constraints from the same
// document fill DeclaredConstraint for matching keys.
func (d document) lockEntries(declared []domain.PackageEntry) ([]domain.PackageEntry, error) {
	constraints := make(map[domain.PackageKey]string, len(declared))
	for _, entry := range declared {
		constraints[entry.Key()] = entry.DeclaredConstraint
	}

	var entries []domain.PackageEntry
	for _, sec := range []struct {
		name  string
		scope domain.Scope
	}{
		{sectionPackages, domain.ScopeRuntime},
		{sectionPackagesDev, domain.ScopeDev},
	} {
		if !d.has(sec.name) {
			continue
		}

		var packages []json.RawMessage
		if err := json.Unmarshal(d[sec.name], &packages); err != nil {
			return nil, invalidSection(sec.name, "expected an array of package objects")
		}

		for i, raw := range packages {
			var pkg lockPackage
			if err := json.Unmarshal(raw, &pkg); err != nil {
				err := zerr.With(invalidSection(sec.name, "expected a package object"), "index", i)
				return nil, err
			}
			if pkg.Name == nil || *pkg.Name == "" {
				err := zerr.With(domain.ErrMalformedManifest, "reason", domain.ErrMissingPackageName.Error())
				err = zerr.With(err, "section", sec.name)
				err = zerr.With(err, "index", i)
				return nil, err
			}
			if domain.IsPlatformPackage(*pkg.Name) {
				continue
			}

			entry := domain.PackageEntry{
				Name:            *pkg.Name,
				ResolvedVersion: pkg.Version,
				Scope:           sec.scope,
			}
			entry.DeclaredConstraint = constraints[entry.Key()]
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func invalidSection(section, reason string) error {
	err := zerr.With(domain.ErrMalformedManifest, "reason", domain.ErrInvalidSection.Error()+": "+reason)
	return zerr.With(err, "section", section)
}
