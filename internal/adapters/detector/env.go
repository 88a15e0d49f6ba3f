// Package detector selects how the change list is styled for the current terminal.
package detector

import (
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/requiregen/internal/ui/output"
	"golang.org/x/term"
)

// OutputMode is the styling applied to human-readable output.
type OutputMode int

const (
	// ModeAuto detects the mode from the environment.
	ModeAuto OutputMode = iota
	// ModeColor styles output for an interactive terminal.
	ModeColor
	// ModeCI styles output with basic ANSI colors for CI logs.
	ModeCI
	// ModePlain disables styling.
	ModePlain
)

// DetectEnvironment returns the mode for stdout.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) OutputMode {
	if ci == "true" || ci == "1" {
		return ModeCI
	}
	if !isTTY {
		return ModePlain
	}
	return ModeColor
}

// ResolveMode applies the --color flag to the detected mode.
// userFlag is one of "auto", "always", "never" or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "always":
		if autoDetected == ModeCI {
			return ModeCI
		}
		return ModeColor
	case "never":
		return ModePlain
	default:
		return autoDetected
	}
}

// Profile returns the termenv profile used to render in mode.
func (m OutputMode) Profile() func() termenv.Profile {
	switch m {
	case ModeColor:
		return output.ColorProfile
	case ModeCI:
		return output.ColorProfileANSI
	case ModePlain:
		return output.ColorProfileAscii
	default:
		return DetectEnvironment().Profile()
	}
}
