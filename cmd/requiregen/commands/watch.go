package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/requiregen/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [before] <after> [output]",
		Short: "Regenerate the script whenever a snapshot changes",
		Long: `Generate the script once, then regenerate it every time the after snapshot
(or an explicit before snapshot) changes on disk. Stop with Ctrl+C.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := resolvePaths(cmd, args, true)
			if err != nil {
				return err
			}
			return c.app.Watch(cmd.Context(), app.GenerateOptions{
				BeforePath: paths.before,
				AfterPath:  paths.after,
				OutputPath: paths.output,
			})
		},
	}

	cmd.Flags().StringP("before", "b", "", "Snapshot taken before the update (default: captured snapshot)")
	cmd.Flags().StringP("after", "a", "", "Snapshot to watch")
	cmd.Flags().StringP("output", "o", "", "Script path (default: configured output, update-deps.sh)")

	return cmd
}
