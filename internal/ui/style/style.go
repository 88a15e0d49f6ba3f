// Package style holds the shared colors and icons of the CLI.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/requiregen/internal/core/domain"
)

// Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Plus    = "+"
	Minus   = "-"
	Up      = "↑"
	Down    = "↓"
	Circle  = "○"
)

// KindIcon returns the icon shown next to a change of the given kind.
func KindIcon(kind domain.ChangeKind) string {
	switch kind {
	case domain.ChangeAdded:
		return Plus
	case domain.ChangeRemoved:
		return Minus
	case domain.ChangeUpgraded:
		return Up
	case domain.ChangeDowngraded:
		return Down
	default:
		return Circle
	}
}

// KindColor returns the color used for a change of the given kind.
func KindColor(kind domain.ChangeKind) lipgloss.Color {
	switch kind {
	case domain.ChangeAdded, domain.ChangeUpgraded:
		return Green
	case domain.ChangeRemoved:
		return Red
	case domain.ChangeDowngraded:
		return Yellow
	default:
		return Slate
	}
}
