package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/requiregen/internal/core/domain"
	"go.trai.ch/requiregen/internal/engine/diff"
	"go.trai.ch/requiregen/internal/engine/manifest"
)

func load(t *testing.T, label domain.Label, doc string) *domain.Snapshot {
	t.Helper()
	s, err := manifest.Load(label, []byte(doc))
	require.NoError(t, err)
	return s
}

func TestCompute_UpgradeAndAdd(t *testing.T) {
	before := load(t, domain.LabelBefore, `{"require": {"acme/widget": "^1.0"}}`)
	after := load(t, domain.LabelAfter, `{"require": {"acme/widget": "^2.0", "acme/gadget": "^1.0"}}`)

	records := diff.Compute(before, after)

	assert.Equal(t, []domain.ChangeRecord{
		{Name: "acme/gadget", Scope: domain.ScopeRuntime, Kind: domain.ChangeAdded, ToVersion: "^1.0"},
		{Name: "acme/widget", Scope: domain.ScopeRuntime, Kind: domain.ChangeUpgraded, FromVersion: "^1.0", ToVersion: "^2.0"},
	}, records)
}

func TestCompute_RemovedDevPackage(t *testing.T) {
	before := load(t, domain.LabelBefore, `{
		"require": {"acme/widget": "^1.0"},
		"require-dev": {"acme/legacy": "^0.9"}
	}`)
	after := load(t, domain.LabelAfter, `{"require": {"acme/widget": "^1.0"}}`)

	records := diff.Compute(before, after)
	require.Len(t, records, 2)

	assert.Equal(t, domain.ChangeUnchanged, records[0].Kind)
	assert.Equal(t, domain.ChangeRecord{
		Name:        "acme/legacy",
		Scope:       domain.ScopeDev,
		Kind:        domain.ChangeRemoved,
		FromVersion: "^0.9",
	}, records[1])
}

func TestCompute_Classification(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want domain.ChangeKind
	}{
		{name: "identical", from: "1.2.3", to: "1.2.3", want: domain.ChangeUnchanged},
		{name: "upgrade", from: "1.2.3", to: "1.3.0", want: domain.ChangeUpgraded},
		{name: "downgrade", from: "2.0.0", to: "1.9.9", want: domain.ChangeDowngraded},
		{name: "same precedence, different text", from: "v1.0", to: "1.0.0", want: domain.ChangeUpgraded},
		{name: "build metadata change", from: "1.0.0+a", to: "1.0.0+b", want: domain.ChangeUpgraded},
		{name: "non-semver falls back to upgrade", from: "dev-main", to: "dev-feature", want: domain.ChangeUpgraded},
		{name: "mixed falls back to upgrade", from: "2.0.0", to: "dev-main", want: domain.ChangeUpgraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := load(t, domain.LabelBefore, `{"packages": [{"name": "acme/widget", "version": "`+tt.from+`"}]}`)
			after := load(t, domain.LabelAfter, `{"packages": [{"name": "acme/widget", "version": "`+tt.to+`"}]}`)

			records := diff.Compute(before, after)
			require.Len(t, records, 1)
			assert.Equal(t, tt.want, records[0].Kind)
		})
	}
}

func TestCompute_ConstraintEditsAreEmitted(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want domain.ChangeKind
	}{
		{name: "bound flip", from: ">=1.0", to: "<1.0", want: domain.ChangeUpgraded},
		{name: "caret to tilde", from: "^1.0", to: "~1.0", want: domain.ChangeUpgraded},
		{name: "build metadata", from: "1.0.0+a", to: "1.0.0+b", want: domain.ChangeUpgraded},
		{name: "caret downgrade", from: "^2.0", to: "^1.5", want: domain.ChangeDowngraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := load(t, domain.LabelBefore, `{"require": {"acme/widget": "`+tt.from+`"}}`)
			after := load(t, domain.LabelAfter, `{"require": {"acme/widget": "`+tt.to+`"}}`)

			records := diff.Compute(before, after)
			require.Len(t, records, 1)
			assert.Equal(t, tt.want, records[0].Kind)
			assert.Len(t, diff.Emitted(records), 1)
		})
	}
}

func TestCompute_SelfDiffIsUnchanged(t *testing.T) {
	s := load(t, domain.LabelBefore, `{
		"require": {"acme/a": "^1.0", "acme/b": "dev-main"},
		"require-dev": {"acme/c": "~3.1"}
	}`)

	records := diff.Compute(s, s)
	require.Len(t, records, 3)
	for _, r := range records {
		assert.Equal(t, domain.ChangeUnchanged, r.Kind, r.Name)
	}
	assert.Empty(t, diff.Emitted(records))
}

func TestCompute_Ordering(t *testing.T) {
	before := load(t, domain.LabelBefore, `{
		"require-dev": {"zeta/dev": "1.0", "alpha/dev": "1.0"},
		"require": {"Zeta/run": "1.0"}
	}`)
	after := load(t, domain.LabelAfter, `{
		"require": {"beta/run": "1.0", "alpha/run": "1.0"},
		"require-dev": {"mid/dev": "1.0"}
	}`)

	records := diff.Compute(before, after)

	got := make([]domain.PackageKey, 0, len(records))
	for _, r := range records {
		got = append(got, r.Key())
	}

	// Byte-wise order puts upper case before lower case.
	assert.Equal(t, []domain.PackageKey{
		{Name: "Zeta/run", Scope: domain.ScopeRuntime},
		{Name: "alpha/run", Scope: domain.ScopeRuntime},
		{Name: "beta/run", Scope: domain.ScopeRuntime},
		{Name: "alpha/dev", Scope: domain.ScopeDev},
		{Name: "mid/dev", Scope: domain.ScopeDev},
		{Name: "zeta/dev", Scope: domain.ScopeDev},
	}, got)
}

func TestCompute_ScopeMoveIsRemoveAndAdd(t *testing.T) {
	before := load(t, domain.LabelBefore, `{"require-dev": {"acme/widget": "^1.0"}}`)
	after := load(t, domain.LabelAfter, `{"require": {"acme/widget": "^1.0"}}`)

	records := diff.Compute(before, after)
	require.Len(t, records, 2)
	assert.Equal(t, domain.ChangeAdded, records[0].Kind)
	assert.Equal(t, domain.ScopeRuntime, records[0].Scope)
	assert.Equal(t, domain.ChangeRemoved, records[1].Kind)
	assert.Equal(t, domain.ScopeDev, records[1].Scope)
}

func TestCompute_Completeness(t *testing.T) {
	before := load(t, domain.LabelBefore, `{"require": {"a/one": "1", "a/two": "1"}, "require-dev": {"d/one": "1"}}`)
	after := load(t, domain.LabelAfter, `{"require": {"a/two": "1", "a/three": "1"}, "require-dev": {"d/two": "1"}}`)

	summary := diff.Summarize(diff.Compute(before, after))

	assert.Equal(t, 2, summary[domain.ChangeAdded])
	assert.Equal(t, 2, summary[domain.ChangeRemoved])
	assert.Equal(t, 1, summary[domain.ChangeUnchanged])
	assert.Equal(t, 4, summary.Net())
}
