package cmd

import (
	"encoding/json"
	"fmt"

	"palcfg/internal/config"

	"github.com/spf13/cobra"
)

// newLaunchCmd creates the "launch" command.
func newLaunchCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Save LaunchSetting=0 and exit with the launch status",
		Long: `Do what the editor's launch action does without showing the editor:
set LaunchSetting=0, save the file and exit with status 11.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if err := config.MarkLaunched(app.Store, app.Path()); err != nil {
				return err
			}

			if app.JSON {
				if err := json.NewEncoder(app.Out).Encode(map[string]any{
					"path":      app.Path(),
					"exit_code": ExitLaunch,
				}); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(app.Out, "%s %s\n", app.SuccessColor("✓ Launching with"), app.Path())
			}
			return launchExit()
		},
	}

	return cmd
}
