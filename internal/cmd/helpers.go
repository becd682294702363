package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"palcfg/internal/config"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const maxSuggestions = 3

// suggest returns up to three entry names resembling name, closest first.
func suggest(name string, names []string) []string {
	ranks := fuzzy.RankFindFold(name, names)
	if len(ranks) == 0 {
		// Fall back to the reverse direction so a long mistyped name still
		// finds the shorter entry it contains.
		for _, n := range names {
			if fuzzy.MatchFold(n, name) {
				ranks = append(ranks, fuzzy.Rank{Source: n, Target: n, Distance: len(name) - len(n)})
			}
		}
	}
	sort.Sort(ranks)
	return lo.Map(lo.Slice(ranks, 0, maxSuggestions), func(r fuzzy.Rank, _ int) string { return r.Target })
}

// lookupError adds "did you mean" hints to unknown entry errors.
func lookupError(store *config.Store, name string, err error) error {
	if !errors.Is(err, config.ErrUnknownEntry) {
		return err
	}
	hints := suggest(name, store.Names())
	if len(hints) == 0 {
		return err
	}
	return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(hints, ", "))
}

// completeEntryNames offers the profile's entry names for the first argument.
func completeEntryNames(provider *AppProvider) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) != 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		app, err := provider.Get()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return lo.Filter(app.Store.Names(), func(n string, _ int) bool {
			return strings.HasPrefix(strings.ToLower(n), strings.ToLower(toComplete))
		}), cobra.ShellCompDirectiveNoFileComp
	}
}

// save writes the store back and reports failures with the file path.
func save(app *App) error {
	if err := app.Store.Save(app.Path()); err != nil {
		return err
	}
	app.Log.WithField("path", app.Path()).Info("settings saved")
	return nil
}
