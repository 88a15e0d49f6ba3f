package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/requiregen/internal/core/domain"
	"go.trai.ch/zerr"
)

// pathArgs resolves before/after/output from flags or positional arguments.
// Positional forms: "after", "before after" and "before after output".
// Flags and positional paths cannot be mixed; --output only conflicts with a positional output.
type pathArgs struct {
	before string
	after  string
	output string
}

func resolvePaths(cmd *cobra.Command, args []string, withOutput bool) (pathArgs, error) {
	var p pathArgs
	p.before, _ = cmd.Flags().GetString("before")
	p.after, _ = cmd.Flags().GetString("after")
	if withOutput {
		p.output, _ = cmd.Flags().GetString("output")
	}

	if len(args) == 0 {
		if p.after == "" {
			return p, zerr.With(domain.ErrMissingArguments, "missing", "after")
		}
		return p, nil
	}

	if cmd.Flags().Changed("before") || cmd.Flags().Changed("after") {
		return p, domain.ErrConflictingArguments
	}

	if len(args) == 3 && withOutput && cmd.Flags().Changed("output") {
		return p, zerr.With(domain.ErrConflictingArguments, "flag", "output")
	}

	switch len(args) {
	case 1:
		p.after = args[0]
	case 2:
		p.before, p.after = args[0], args[1]
	default:
		p.before, p.after = args[0], args[1]
		if withOutput {
			p.output = args[2]
		}
	}
	return p, nil
}
