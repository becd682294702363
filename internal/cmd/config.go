package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"palcfg/internal/config"

	"github.com/spf13/cobra"
)

// entryJSON is the JSON shape of one entry.
type entryJSON struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	Default   string `json:"default"`
	FileValue string `json:"file_value"`
	Format    string `json:"format"`
	Kind      string `json:"kind"`
	Index     *int   `json:"index,omitempty"`
}

func toEntryJSON(e *config.Entry) entryJSON {
	out := entryJSON{
		Name:      e.Name(),
		Value:     e.Value(),
		Default:   e.Default(),
		FileValue: e.FileValue(),
		Format:    e.Format(),
		Kind:      e.Kind().String(),
	}
	if i, err := e.ValueAsIndex(); err == nil {
		out.Index = &i
	}
	return out
}

// newGetCmd creates the "get" command.
func newGetCmd(provider *AppProvider) *cobra.Command {
	var asIndex bool

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Print the value of a setting",
		Long: `Print the value of a setting as it would be used by the game.

Names are matched case-insensitively. Values read from the file have already
been corrected into the setting's domain. With --index, enumerated and
numeric settings print their zero-based position in the domain instead.

Examples:
  palcfg get FullScreen
  palcfg get cd --index
  palcfg get MusicVolume --json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeEntryNames(provider),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			e, err := app.Store.Entry(args[0])
			if err != nil {
				return lookupError(app.Store, args[0], err)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(toEntryJSON(e))
			}

			if asIndex {
				i, err := e.ValueAsIndex()
				if err != nil {
					return err
				}
				fmt.Fprintln(app.Out, i)
				return nil
			}
			fmt.Fprintln(app.Out, e.Value())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asIndex, "index", false, "Print the value's position in the domain")

	return cmd
}

// newSetCmd creates the "set" command.
func newSetCmd(provider *AppProvider) *cobra.Command {
	var byIndex bool

	cmd := &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Change a setting and save the file",
		Long: `Change a setting and save the file.

Unlike values read from the file, the new value is not corrected: it must
already be valid for the setting, so "1" and "0" for switches, one of the
listed choices for enumerations (matched without regard to case), and an
integer inside the bounds for numeric settings. Anything else is rejected
and the file is left alone.

With --index the value is a zero-based position in the domain.

Examples:
  palcfg set FullScreen 1
  palcfg set CD ogg
  palcfg set OPLCore 3 --index`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeEntryNames(provider),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			name, value := args[0], args[1]
			e, err := app.Store.Entry(name)
			if err != nil {
				return lookupError(app.Store, name, err)
			}

			if byIndex {
				index, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("invalid index %q: %w", value, err)
				}
				err = e.SetIndexAsValue(index)
				if err != nil {
					return err
				}
			} else if err := e.SetValue(value); err != nil {
				return err
			}

			if err := save(app); err != nil {
				return err
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(toEntryJSON(e))
			}
			fmt.Fprintf(app.Out, "%s %s=%s\n", app.SuccessColor("✓ Set"), e.Name(), e.Value())
			return nil
		},
	}

	cmd.Flags().BoolVar(&byIndex, "index", false, "Treat the value as a position in the domain")

	return cmd
}
