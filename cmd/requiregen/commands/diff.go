package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/requiregen/internal/app"
)

func (c *CLI) newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [before] <after>",
		Short: "Show the dependency changes between two snapshots",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := resolvePaths(cmd, args, false)
			if err != nil {
				return err
			}

			asJSON, _ := cmd.Flags().GetBool("json")
			all, _ := cmd.Flags().GetBool("all")
			color, _ := cmd.Flags().GetString("color")

			return c.app.Diff(cmd.Context(), app.DiffOptions{
				BeforePath: paths.before,
				AfterPath:  paths.after,
				JSON:       asJSON,
				All:        all,
				Color:      color,
			}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringP("before", "b", "", "Snapshot taken before the update (default: captured snapshot)")
	cmd.Flags().StringP("after", "a", "", "Snapshot taken after the update")
	cmd.Flags().Bool("json", false, "Print the changes as JSON")
	cmd.Flags().Bool("all", false, "Include unchanged packages")
	cmd.Flags().String("color", "auto", "Colorize output: auto, always or never")

	return cmd
}
