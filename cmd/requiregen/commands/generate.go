package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/requiregen/internal/app"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [before] <after> [output]",
		Short: "Write a script replaying the dependency changes between two snapshots",
		Long: `Compare two composer.json or composer.lock snapshots and write an executable
script of require / remove commands that reproduces the change.

Without a before snapshot the one stored by 'requiregen capture' is used.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := resolvePaths(cmd, args, true)
			if err != nil {
				return err
			}
			return c.app.Generate(cmd.Context(), app.GenerateOptions{
				BeforePath: paths.before,
				AfterPath:  paths.after,
				OutputPath: paths.output,
			})
		},
	}

	cmd.Flags().StringP("before", "b", "", "Snapshot taken before the update (default: captured snapshot)")
	cmd.Flags().StringP("after", "a", "", "Snapshot taken after the update")
	cmd.Flags().StringP("output", "o", "", "Script path (default: configured output, update-deps.sh)")

	return cmd
}
