package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"palcfg/internal/config"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// Version is the palcfg release. Set it at build time with
// -ldflags "-X palcfg/internal/cmd.Version=1.2.3".
var Version = "0.3.0"

type versionJSON struct {
	Version   string   `json:"version"`
	Platforms []string `json:"platforms"`
	Releases  []string `json:"releases"`
}

func newVersionCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the palcfg release and the game releases it knows",
		Long: `Print the palcfg release together with the platforms and game releases
whose settings files it can edit. A game release newer than the ones listed
may carry settings this palcfg does not know about; "palcfg check" reports
them as unknown keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionJSON{
				Version:   Version,
				Platforms: lo.Map(config.Platforms(), func(p config.Platform, _ int) string { return string(p) }),
				Releases:  lo.Map(config.Versions(), func(v config.Version, _ int) string { return string(v) }),
			}

			if provider.jsonOutput() {
				return json.NewEncoder(provider.Out).Encode(info)
			}
			fmt.Fprintf(provider.Out, "palcfg version %s\n", info.Version)
			fmt.Fprintf(provider.Out, "platforms: %s\n", strings.Join(info.Platforms, ", "))
			fmt.Fprintf(provider.Out, "releases:  %s\n", strings.Join(info.Releases, ", "))
			return nil
		},
	}
	return cmd
}
