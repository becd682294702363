package cmd

import (
	"fmt"

	"palcfg/internal/config"
	"palcfg/internal/tui"

	"github.com/spf13/cobra"
)

// newEditCmd creates the "edit" command, which is also what palcfg runs
// without a subcommand.
func newEditCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive settings editor",
		Long: `Open the interactive settings editor.

Leaving the editor discards unsaved edits and exits with status 0. Launching
from the editor saves the settings with LaunchSetting=0 and exits with
status 11. If the file already has LaunchSetting=0 the editor is not shown
and palcfg exits with status 11 immediately.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(provider)
		},
	}

	return cmd
}

func runEdit(provider *AppProvider) error {
	app, err := provider.Get()
	if err != nil {
		return err
	}

	if config.SkipsEditor(app.Store) {
		app.Log.Debug("LaunchSetting is 0, skipping the editor")
		return launchExit()
	}

	result, err := app.RunEditor(tui.New(app.Store, app.Settings.Profile, app.Path(), app.Labels))
	if err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	if result == tui.ResultLaunch {
		return launchExit()
	}
	return nil
}
