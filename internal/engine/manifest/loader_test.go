package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/requiregen/internal/core/domain"
	"go.trai.ch/requiregen/internal/engine/manifest"
	"go.trai.ch/zerr"
)

func TestLoad_ManifestShape(t *testing.T) {
	doc := `{
  "name": "acme/app",
  "require": {
    "php": ">=8.1",
    "ext-json": "*",
    "acme/widget": "^1.0",
    "acme/gadget": "~2.3"
  },
  "require-dev": {
    "acme/testkit": "^4.0"
  },
  "config": {"sort-packages": true}
}`

	snapshot, err := manifest.Load(domain.LabelBefore, []byte(doc))
	require.NoError(t, err)

	assert.Equal(t, domain.LabelBefore, snapshot.Label())
	assert.Equal(t, 3, snapshot.Len())

	assert.Equal(t, []domain.PackageKey{
		{Name: "acme/gadget", Scope: domain.ScopeRuntime},
		{Name: "acme/widget", Scope: domain.ScopeRuntime},
		{Name: "acme/testkit", Scope: domain.ScopeDev},
	}, snapshot.Keys())

	widget, ok := snapshot.Lookup(domain.PackageKey{Name: "acme/widget", Scope: domain.ScopeRuntime})
	require.True(t, ok)
	assert.Equal(t, "^1.0", widget.DeclaredConstraint)
	assert.Empty(t, widget.ResolvedVersion)
	assert.Equal(t, "^1.0", widget.Version())
}

func TestLoad_LockShape(t *testing.T) {
	doc := `{
  "_readme": ["This file locks the dependencies of your project"],
  "content-hash": "abc",
  "packages": [
    {"name": "acme/widget", "version": "2.3.1", "type": "library"},
    {"name": "acme/gadget", "version": "v1.0.4"}
  ],
  "packages-dev": [
    {"name": "acme/testkit", "version": "4.1.0"}
  ],
  "platform": {"php": ">=8.1"}
}`

	snapshot, err := manifest.Load(domain.LabelAfter, []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 3, snapshot.Len())

	gadget, ok := snapshot.Lookup(domain.PackageKey{Name: "acme/gadget", Scope: domain.ScopeRuntime})
	require.True(t, ok)
	assert.Equal(t, "v1.0.4", gadget.ResolvedVersion)
	assert.Empty(t, gadget.DeclaredConstraint)

	testkit, ok := snapshot.Lookup(domain.PackageKey{Name: "acme/testkit", Scope: domain.ScopeDev})
	require.True(t, ok)
	assert.Equal(t, "4.1.0", testkit.Version())
}

func TestLoad_LockShapeWithRequirements(t *testing.T) {
	doc := `{
  "require": {"acme/widget": "^2.0"},
  "packages": [{"name": "acme/widget", "version": "2.3.1"}]
}`

	snapshot, err := manifest.Load(domain.LabelAfter, []byte(doc))
	require.NoError(t, err)

	widget, ok := snapshot.Lookup(domain.PackageKey{Name: "acme/widget", Scope: domain.ScopeRuntime})
	require.True(t, ok)
	assert.Equal(t, "^2.0", widget.DeclaredConstraint)
	assert.Equal(t, "2.3.1", widget.Version())
}

func TestLoad_MissingSections(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty object", doc: `{}`},
		{name: "null sections", doc: `{"require": null, "require-dev": null}`},
		{name: "php empty arrays", doc: `{"require": [], "require-dev": []}`},
		{name: "only unknown fields", doc: `{"name": "acme/app", "license": "MIT"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot, err := manifest.Load(domain.LabelBefore, []byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, 0, snapshot.Len())
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "invalid json", doc: `{"require": `},
		{name: "empty document", doc: ``},
		{name: "top-level array", doc: `[{"name": "acme/widget"}]`},
		{name: "top-level string", doc: `"acme/widget"`},
		{name: "require is a list of strings", doc: `{"require": ["acme/widget"]}`},
		{name: "constraint is a number", doc: `{"require": {"acme/widget": 1}}`},
		{name: "empty package name", doc: `{"require-dev": {"": "^1.0"}}`},
		{name: "packages is an object", doc: `{"packages": {"acme/widget": "1.0.0"}}`},
		{name: "package entry without name", doc: `{"packages": [{"version": "1.0.0"}]}`},
		{name: "package entry with empty name", doc: `{"packages-dev": [{"name": "", "version": "1.0.0"}]}`},
		{name: "package entry is a string", doc: `{"packages": ["acme/widget"]}`},
		{name: "duplicate package in scope", doc: `{"packages": [
			{"name": "acme/widget", "version": "1.0.0"},
			{"name": "acme/widget", "version": "1.1.0"}
		]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot, err := manifest.Load(domain.LabelBefore, []byte(tt.doc))
			require.Error(t, err)
			assert.Nil(t, snapshot)
			assert.ErrorContains(t, err, domain.ErrMalformedManifest.Error())
		})
	}
}

func TestLoad_MissingNameMetadata(t *testing.T) {
	doc := `{"packages": [{"name": "acme/widget", "version": "1.0.0"}, {"version": "2.0.0"}]}`

	_, err := manifest.Load(domain.LabelBefore, []byte(doc))
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)

	meta := zErr.Metadata()
	assert.Equal(t, "packages", meta["section"])
	assert.Equal(t, 1, meta["index"])
}

func TestLoad_SameNameInBothScopes(t *testing.T) {
	doc := `{"require": {"acme/widget": "^1.0"}, "require-dev": {"acme/widget": "^1.0"}}`

	snapshot, err := manifest.Load(domain.LabelBefore, []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, snapshot.Len())
}

func TestDetectShape(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want manifest.Shape
	}{
		{name: "manifest", doc: `{"require": {"acme/widget": "^1.0"}}`, want: manifest.ShapeManifest},
		{name: "lock", doc: `{"packages": [{"name": "acme/widget", "version": "1.0.0"}]}`, want: manifest.ShapeLock},
		{name: "dev-only lock", doc: `{"packages": [], "packages-dev": [{"name": "a/b", "version": "1"}]}`, want: manifest.ShapeLock},
		{name: "empty", doc: `{}`, want: manifest.ShapeManifest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := manifest.DetectShape([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
