// Package linear renders change lists as plain, line-oriented text or JSON.
package linear

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/requiregen/internal/core/domain"
	"go.trai.ch/requiregen/internal/engine/diff"
	"go.trai.ch/requiregen/internal/ui/output"
	"go.trai.ch/requiregen/internal/ui/style"
)

// Renderer writes change lists to a single writer.
type Renderer struct {
	w      io.Writer
	output *termenv.Output
}

// NewRenderer creates a Renderer writing to w with the given color profile.
// A nil writer means os.Stdout; a nil profile means output.ColorProfileANSI.
func NewRenderer(w io.Writer, profileFn func() termenv.Profile) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	if profileFn == nil {
		profileFn = output.ColorProfileANSI
	}
	return &Renderer{
		w:      w,
		output: output.NewWithProfile(w, profileFn),
	}
}

// Render writes one line per record followed by a summary line.
// Unchanged records are only listed when all is set.
func (r *Renderer) Render(records []domain.ChangeRecord, all bool) error {
	shown := records
	if !all {
		shown = diff.Emitted(records)
	}

	nameWidth, scopeWidth := 0, 0
	for _, rec := range shown {
		nameWidth = max(nameWidth, len(rec.Name))
		scopeWidth = max(scopeWidth, len(rec.Scope.String()))
	}

	var b strings.Builder
	for _, rec := range shown {
		icon := r.output.String(style.KindIcon(rec.Kind)).
			Foreground(termenv.RGBColor(string(style.KindColor(rec.Kind)))).
			String()
		fmt.Fprintf(&b, "%s %-*s  %-*s  %s\n", icon, nameWidth, rec.Name, scopeWidth, rec.Scope, versions(rec))
	}
	b.WriteString(summaryLine(diff.Summarize(records)))
	b.WriteString("\n")

	_, err := io.WriteString(r.w, b.String())
	return err
}

func versions(rec domain.ChangeRecord) string {
	switch rec.Kind {
	case domain.ChangeAdded:
		return rec.ToVersion
	case domain.ChangeRemoved, domain.ChangeUnchanged:
		return rec.FromVersion
	default:
		return rec.FromVersion + " → " + rec.ToVersion
	}
}

func summaryLine(summary diff.Summary) string {
	parts := make([]string, 0, len(domain.ChangeKinds))
	for _, kind := range domain.ChangeKinds {
		if kind == domain.ChangeUnchanged {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d %s", summary[kind], kind))
	}
	return strings.Join(parts, ", ") + fmt.Sprintf(" (%d unchanged)", summary[domain.ChangeUnchanged])
}

type jsonChange struct {
	Name  string `json:"name"`
	Scope string `json:"scope"`
	Kind  string `json:"kind"`
	From  string `json:"from,omitempty"`
	To    string `json:"to,omitempty"`
}

// Source identifies one side of the comparison in a JSON report.
type Source struct {
	Path        string `json:"path"`
	Shape       string `json:"shape"`
	Fingerprint string `json:"fingerprint"`
}

type jsonReport struct {
	Before  Source         `json:"before"`
	After   Source         `json:"after"`
	Changes []jsonChange   `json:"changes"`
	Summary map[string]int `json:"summary"`
}

// RenderJSON writes both sources, the records and their summary as one indented JSON document.
func (r *Renderer) RenderJSON(records []domain.ChangeRecord, all bool, before, after Source) error {
	shown := records
	if !all {
		shown = diff.Emitted(records)
	}

	report := jsonReport{
		Before:  before,
		After:   after,
		Changes: make([]jsonChange, 0, len(shown)),
		Summary: make(map[string]int, len(domain.ChangeKinds)),
	}
	for _, rec := range shown {
		report.Changes = append(report.Changes, jsonChange{
			Name:  rec.Name,
			Scope: rec.Scope.String(),
			Kind:  rec.Kind.String(),
			From:  rec.FromVersion,
			To:    rec.ToVersion,
		})
	}
	summary := diff.Summarize(records)
	for _, kind := range domain.ChangeKinds {
		report.Summary[kind.String()] = summary[kind]
	}

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(report)
}
