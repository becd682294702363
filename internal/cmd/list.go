package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"palcfg/internal/config"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// newListCmd creates the "list" command.
func newListCmd(provider *AppProvider) *cobra.Command {
	var changedOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the settings of the profile",
		Long: `List every setting of the selected profile in file order, with its value
and the values it accepts.

With --changed only settings that differ from the profile default are shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			entries := app.Store.Entries()
			if changedOnly {
				entries = lo.Filter(entries, func(e *config.Entry, _ int) bool { return e.Value() != e.Default() })
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(lo.Map(entries, func(e *config.Entry, _ int) entryJSON { return toEntryJSON(e) }))
			}

			if len(entries) == 0 {
				fmt.Fprintln(app.Out, "No settings differ from the defaults.")
				return nil
			}

			w := tabwriter.NewWriter(app.Out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVALUE\tFORMAT")
			for _, e := range entries {
				value := e.Value()
				if value != e.Default() {
					value = app.WarnColor(value)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name(), value, e.Format())
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&changedOnly, "changed", false, "Only show settings that differ from the default")

	return cmd
}
