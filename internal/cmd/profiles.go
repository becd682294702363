package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"palcfg/internal/config"

	"github.com/spf13/cobra"
)

type profileJSON struct {
	Platform string   `json:"platform"`
	Version  string   `json:"version"`
	Handheld bool     `json:"handheld"`
	Entries  []string `json:"entries"`
}

// newProfilesCmd creates the "profiles" command. It needs no settings file.
func newProfilesCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the supported platform and version combinations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out []profileJSON
			for _, p := range config.Profiles() {
				s, err := config.NewStoreForProfile(p)
				if err != nil {
					return err
				}
				out = append(out, profileJSON{
					Platform: string(p.Platform),
					Version:  string(p.Version),
					Handheld: p.IsHandheld(),
					Entries:  s.Names(),
				})
			}

			if provider.jsonOutput() {
				return json.NewEncoder(provider.Out).Encode(out)
			}

			w := tabwriter.NewWriter(provider.Out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PLATFORM\tVERSION\tSETTINGS")
			for _, p := range out {
				fmt.Fprintf(w, "%s\t%s\t%d\n", p.Platform, p.Version, len(p.Entries))
			}
			return w.Flush()
		},
	}
	return cmd
}
