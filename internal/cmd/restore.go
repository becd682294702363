package cmd

import (
	"encoding/json"
	"fmt"

	"palcfg/internal/config"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// newRestoreCmd creates the "restore" command.
func newRestoreCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <name>...",
		Short: "Put settings back to their defaults and save",
		Long: `Put one or more settings back to the profile's default and save the file.

Settings whose default is empty are left out of the file entirely.

Examples:
  palcfg restore MusicVolume SoundVolume
  palcfg restore gamepath`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeEntryNames(provider),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			// Resolve every name before touching anything.
			entries := make([]*config.Entry, 0, len(args))
			for _, name := range args {
				e, err := app.Store.Entry(name)
				if err != nil {
					return lookupError(app.Store, name, err)
				}
				entries = append(entries, e)
			}
			for _, e := range entries {
				e.RestoreDefault()
			}

			if err := save(app); err != nil {
				return err
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(lo.Map(entries, func(e *config.Entry, _ int) entryJSON { return toEntryJSON(e) }))
			}
			for _, e := range entries {
				fmt.Fprintf(app.Out, "%s %s=%s\n", app.SuccessColor("✓ Restored"), e.Name(), e.Value())
			}
			return nil
		},
	}

	return cmd
}

// newResetCmd creates the "reset" command.
func newResetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Put every setting back to its default and save",
		Long: `Put every setting of the profile back to its default and save the file.

Keys in the file that the profile does not know about are dropped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			app.Store.RestoreAllDefaults()
			if err := save(app); err != nil {
				return err
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]string{
					"path":    app.Path(),
					"profile": app.Settings.Profile.String(),
				})
			}
			fmt.Fprintf(app.Out, "%s %s to %s defaults\n", app.SuccessColor("✓ Reset"), app.Path(), app.Settings.Profile)
			return nil
		},
	}

	return cmd
}
