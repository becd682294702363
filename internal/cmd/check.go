package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"palcfg/internal/config/cfgfile"

	"github.com/spf13/cobra"
)

// Finding kinds reported by check.
const (
	findingCorrected = "corrected"
	findingUnknown   = "unknown"
	findingDuplicate = "duplicate"
)

type finding struct {
	Pair      int    `json:"pair"`
	Kind      string `json:"kind"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	Corrected string `json:"corrected,omitempty"`
	Hint      string `json:"hint,omitempty"`
}

// newCheckCmd creates the "check" command.
func newCheckCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report values the launcher would correct",
		Long: `Read the settings file and report every line the launcher would not keep
as written: values outside their setting's domain (with the value they are
corrected to), keys the profile does not know, and keys given more than once.

Name=Value pairs are numbered in file order, not counting comments and
blank lines. Exits with status 1 when anything is reported. A missing file
is fine.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			doc, err := cfgfile.Read(app.Fs, app.Path())
			if errors.Is(err, os.ErrNotExist) {
				doc = cfgfile.Document{}
			} else if err != nil {
				return fmt.Errorf("reading %s: %w", app.Path(), err)
			}

			findings := checkDocument(app, doc)

			if app.JSON {
				if err := json.NewEncoder(app.Out).Encode(findings); err != nil {
					return err
				}
			} else if len(findings) == 0 {
				fmt.Fprintf(app.Out, "%s %s\n", app.SuccessColor("✓ No problems in"), app.Path())
			} else {
				for _, f := range findings {
					fmt.Fprintln(app.Out, formatFinding(app, f))
				}
			}

			if len(findings) > 0 {
				return &ExitError{Code: 1}
			}
			return nil
		},
	}

	return cmd
}

func checkDocument(app *App, doc cfgfile.Document) []finding {
	findings := []finding{}
	seen := make(map[string]bool)
	for i, line := range doc.Lines {
		e, err := app.Store.Entry(line.Key)
		if err != nil {
			f := finding{Pair: i + 1, Kind: findingUnknown, Key: line.Key, Value: line.Value}
			if hints := suggest(line.Key, app.Store.Names()); len(hints) > 0 {
				f.Hint = hints[0]
			}
			findings = append(findings, f)
			continue
		}

		if seen[e.Name()] {
			findings = append(findings, finding{Pair: i + 1, Kind: findingDuplicate, Key: line.Key, Value: line.Value})
		}
		seen[e.Name()] = true

		if corrected := e.Correct(line.Value); corrected != line.Value {
			findings = append(findings, finding{Pair: i + 1, Kind: findingCorrected, Key: line.Key, Value: line.Value, Corrected: corrected})
		}
	}
	return findings
}

func formatFinding(app *App, f finding) string {
	prefix := app.WarnColor(fmt.Sprintf("pair %d:", f.Pair))
	switch f.Kind {
	case findingUnknown:
		if f.Hint != "" {
			return fmt.Sprintf("%s unknown key %s (did you mean %s?)", prefix, f.Key, f.Hint)
		}
		return fmt.Sprintf("%s unknown key %s", prefix, f.Key)
	case findingDuplicate:
		return fmt.Sprintf("%s %s given again, the last one wins", prefix, f.Key)
	default:
		return fmt.Sprintf("%s %s=%q is read as %q", prefix, f.Key, f.Value, f.Corrected)
	}
}
