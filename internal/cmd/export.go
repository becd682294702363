package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"palcfg/internal/config"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportFormats = []string{"yaml", "toml", "json"}

// newExportCmd creates the "export" command.
func newExportCmd(provider *AppProvider) *cobra.Command {
	var (
		format   string
		output   string
		nonEmpty bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the effective settings as YAML, TOML or JSON",
		Long: `Export the effective settings of the profile, after correction, as a flat
name to value mapping. YAML and JSON keep the file order; TOML keys are sorted.

Examples:
  palcfg export
  palcfg export --format toml -o settings.toml
  palcfg export --format json --non-empty`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			entries := app.Store.Entries()
			if nonEmpty {
				entries = lo.Filter(entries, func(e *config.Entry, _ int) bool { return e.Value() != "" })
			}

			var buf bytes.Buffer
			if err := encodeEntries(&buf, strings.ToLower(format), entries); err != nil {
				return err
			}

			if output == "" {
				_, err := app.Out.Write(buf.Bytes())
				return err
			}
			if err := afero.WriteFile(app.Fs, output, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			if !app.JSON {
				fmt.Fprintf(app.Out, "%s %d settings to %s\n", app.SuccessColor("✓ Exported"), len(entries), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml, toml or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&nonEmpty, "non-empty", false, "Leave out settings with an empty value")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(exportFormats, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func encodeEntries(w io.Writer, format string, entries []*config.Entry) error {
	switch format {
	case "yaml":
		doc := &yaml.Node{Kind: yaml.MappingNode}
		for _, e := range entries {
			doc.Content = append(doc.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: e.Name()},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Value()},
			)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		values := lo.SliceToMap(entries, func(e *config.Entry) (string, string) { return e.Name(), e.Value() })
		return toml.NewEncoder(w).Encode(values)
	case "json":
		var buf bytes.Buffer
		buf.WriteString("{")
		for i, e := range entries {
			if i > 0 {
				buf.WriteString(",")
			}
			k, _ := json.Marshal(e.Name())
			v, _ := json.Marshal(e.Value())
			fmt.Fprintf(&buf, "\n  %s: %s", k, v)
		}
		buf.WriteString("\n}\n")
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return fmt.Errorf("unknown export format %q (valid: %s)", format, strings.Join(exportFormats, ", "))
	}
}
