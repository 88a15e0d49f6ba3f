// Package script renders change records into an executable dependency-update script.
package script

import (
	"fmt"

	"github.com/kballard/go-shellquote"
	"go.trai.ch/requiregen/internal/core/domain"
	"go.trai.ch/requiregen/internal/engine/constraint"
	"go.trai.ch/zerr"
)

// GeneratorName is written to the script header.
const GeneratorName = "requiregen"

// Options controls the rendered commands.
type Options struct {
	// Binary is the dependency manager executable. Defaults to "composer".
	Binary string

	// Shell is the shebang interpreter. Defaults to "/bin/sh".
	Shell string

	// ExtraArgs are appended to every invocation.
	ExtraArgs []string
}

// OptionsFromConfig builds generator options from the loaded configuration.
func OptionsFromConfig(cfg domain.Config) Options {
	return Options{
		Binary:    cfg.Binary,
		Shell:     cfg.Shell,
		ExtraArgs: cfg.ExtraArgs,
	}
}

func (o Options) withDefaults() Options {
	if o.Binary == "" {
		o.Binary = "composer"
	}
	if o.Shell == "" {
		o.Shell = "/bin/sh"
	}
	return o
}

// Generate renders one command per emitting record, in the order given.
// Records are expected in diff order (runtime before dev, then by name).
// A record whose target version cannot be formatted aborts generation.
func Generate(changes []domain.ChangeRecord, formatter constraint.Formatter, opts Options) (*domain.ScriptArtifact, error) {
	opts = opts.withDefaults()

	lines := make([]string, 0, len(changes))
	for _, change := range changes {
		args, err := command(change, formatter, opts)
		if err != nil {
			return nil, err
		}
		if args == nil {
			continue
		}
		lines = append(lines, shellquote.Join(args...))
	}

	return &domain.ScriptArtifact{
		Header:     header(opts.Shell, len(lines)),
		Lines:      lines,
		Changes:    len(lines),
		Executable: true,
	}, nil
}

func command(change domain.ChangeRecord, formatter constraint.Formatter, opts Options) ([]string, error) {
	var args []string
	switch change.Kind {
	case domain.ChangeAdded, domain.ChangeUpgraded, domain.ChangeDowngraded:
		requested, err := formatter.Format(change.ToVersion)
		if err != nil {
			err := zerr.With(zerr.Wrap(err, "failed to format constraint"), "package", change.Name)
			return nil, zerr.With(err, "scope", change.Scope.String())
		}
		args = append(args, opts.Binary, "require")
		if change.Scope == domain.ScopeDev {
			args = append(args, "--dev")
		}
		args = append(args, change.Name+":"+requested)
	case domain.ChangeRemoved:
		args = append(args, opts.Binary, "remove")
		if change.Scope == domain.ScopeDev {
			args = append(args, "--dev")
		}
		args = append(args, change.Name)
	default:
		return nil, nil
	}
	return append(args, opts.ExtraArgs...), nil
}

func header(shell string, changes int) []string {
	noun := "changes"
	if changes == 1 {
		noun = "change"
	}
	return []string{
		"#!" + shell,
		fmt.Sprintf("# Generated by %s: %d %s", GeneratorName, changes, noun),
		"set -e",
	}
}
