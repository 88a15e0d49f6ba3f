package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/requiregen/internal/adapters/logger"
	"go.trai.ch/requiregen/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing uncolored output to a buffer.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_InfoAndWarn(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Info("wrote update-deps.sh")
	lg.Warn("no changes detected")

	assert.Equal(t, "wrote update-deps.sh\n! no changes detected\n", buf.String())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func chainErr() error {
	return zerr.Wrap(
		zerr.Wrap(errors.New("disk full"), "failed to write file"),
		"failed to capture snapshot",
	)
}

func stageErr() error {
	return domain.NewStageError(
		domain.StageLoad, "after.json", domain.ErrMalformedManifest,
		zerr.With(zerr.With(domain.ErrMalformedManifest, "reason", "invalid manifest section"), "section", "require"),
	)
}

func TestLogger_Error_Golden(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		verbose    bool
		goldenName string
	}{
		{
			name:       "standard error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "zerr chain",
			err:        chainErr(),
			goldenName: "error_chain",
		},
		{
			name:       "zerr chain verbose",
			err:        chainErr(),
			verbose:    true,
			goldenName: "error_chain_verbose",
		},
		{
			name:       "stage error with metadata",
			err:        stageErr(),
			goldenName: "error_stage",
		},
		{
			name:       "stage error with metadata verbose",
			err:        stageErr(),
			verbose:    true,
			goldenName: "error_stage_verbose",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.SetVerbose(tt.verbose)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_StdlibChain(t *testing.T) {
	inner := errors.New("permission denied")
	outer := fmt.Errorf("open after.json: %w", inner)

	lg, buf := newTestLogger(t)
	lg.Error(outer)

	assert.Equal(t, "✗ Error: open after.json: permission denied\n", buf.String())
}

func TestLogger_Error_SingleLine(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(zerr.Wrap(errors.New("line one\nline two"), "failed to read"))

	assert.Equal(t, "✗ Error: failed to read: line one; line two\n", buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(domain.NewStageError(domain.StageRead, "before.json", domain.ErrIOFailure, errors.New("no such file")))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "read before.json: io failure: no such file", record["error"])
}

func TestLogger_SetJSON_PreservesOutput(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.SetJSON(false)

	lg.Info("back to pretty")
	assert.Equal(t, "back to pretty\n", buf.String())
}
