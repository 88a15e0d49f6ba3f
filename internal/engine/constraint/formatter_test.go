package constraint_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/requiregen/internal/core/domain"
	"go.trai.ch/requiregen/internal/engine/constraint"
)

func TestCaret_Format(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{version: "2.3.1", want: "^2.3"},
		{version: "v2.3.1", want: "^2.3"},
		{version: "2.0.5", want: "^2"},
		{version: "2.0", want: "^2"},
		{version: "^2.0", want: "^2"},
		{version: "^1.0", want: "^1"},
		{version: "3", want: "^3"},
		{version: "1.10.0", want: "^1.10"},
		{version: "0.3.1", want: "^0.3"},
		{version: "0.0.5", want: "^0.0"},
		{version: "0", want: "^0.0"},
		{version: "1.2.3.4", want: "^1.2"},
		{version: "  4.1.0 ", want: "^4.1"},
		{version: "dev-master", want: "^dev-master"},
		{version: "1.0.0-beta1", want: "^1.0.0-beta1"},
		{version: "~2.3", want: "^~2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got, err := constraint.Caret{}.Format(tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTilde_Format(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{version: "2.3.1", want: "~2.3"},
		{version: "2", want: "~2.0"},
		{version: "~1.4", want: "~1.4"},
		{version: "dev-main", want: "~dev-main"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got, err := constraint.Tilde{}.Format(tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExact_Format(t *testing.T) {
	got, err := constraint.Exact{}.Format(" v2.3.1 ")
	require.NoError(t, err)
	assert.Equal(t, "v2.3.1", got)
}

func TestFormat_EmptyVersion(t *testing.T) {
	for _, f := range []constraint.Formatter{constraint.Caret{}, constraint.Tilde{}, constraint.Exact{}} {
		for _, v := range []string{"", "   "} {
			_, err := f.Format(v)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrUnparsableVersion))
		}
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		policy  domain.Policy
		want    constraint.Formatter
		wantErr bool
	}{
		{policy: "", want: constraint.Caret{}},
		{policy: domain.PolicyCaret, want: constraint.Caret{}},
		{policy: domain.PolicyTilde, want: constraint.Tilde{}},
		{policy: domain.PolicyExact, want: constraint.Exact{}},
		{policy: "loose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			got, err := constraint.New(tt.policy)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unknown constraint policy")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
