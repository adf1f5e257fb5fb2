package main

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/odvcencio/xonshts/gotreesitter"
)

func newKindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds [query]",
		Short: "List the named node kinds, optionally filtered by a fuzzy query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, lang, err := a.entryFor("", nil)
			if err != nil {
				return err
			}
			kinds := namedKinds(lang)
			if len(args) == 1 {
				ranks := fuzzy.RankFindFold(args[0], kinds)
				sort.Sort(ranks)
				kinds = kinds[:0]
				for _, r := range ranks {
					kinds = append(kinds, r.Target)
				}
				if len(kinds) == 0 {
					return fmt.Errorf("no node kind matches %q", args[0])
				}
			}
			for _, k := range kinds {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
}

// namedKinds returns the sorted, distinct names of the visible named symbols.
func namedKinds(lang *gotreesitter.Language) []string {
	seen := make(map[string]bool)
	var out []string
	for _, md := range lang.SymbolMetadata {
		if !md.Visible || !md.Named || seen[md.Name] {
			continue
		}
		seen[md.Name] = true
		out = append(out, md.Name)
	}
	sort.Strings(out)
	return out
}

// suggestKind finds the kind closest to a mistyped one: the best fuzzy
// match, or failing that the smallest edit distance.
func suggestKind(target string, kinds []string) string {
	ranks := fuzzy.RankFindFold(target, kinds)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}
	best, bestDist := "", len(target)/2+1
	for _, k := range kinds {
		if d := fuzzy.LevenshteinDistance(target, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
