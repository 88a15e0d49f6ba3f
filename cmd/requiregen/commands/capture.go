package commands

import (
	"github.com/spf13/cobra"
)

// defaultCapturePath is captured when no path is given.
const defaultCapturePath = "composer.lock"

func (c *CLI) newCaptureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capture [path]",
		Short: "Store the current snapshot as the before side of the next generate",
		Long: `Store a composer.json or composer.lock as the before snapshot.
Run it from the dependency manager's pre-update hook, then call
'requiregen generate <after>' once the update finished.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultCapturePath
			if len(args) == 1 {
				path = args[0]
			}
			return c.app.Capture(cmd.Context(), path)
		},
	}
}
