package cmd

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/Lurito/samevol"
	"github.com/Lurito/samevol/common"
	"github.com/Lurito/samevol/pretty"
)

var groupFlag bool

var resolveCmd = &cobra.Command{
	Use:     "resolve <path> [path ...]",
	Aliases: []string{"r"},
	Short:   "Resolve paths to the identifiers of their owning volumes.",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		table := samevol.New()
		if groupFlag {
			groupReport(table, args)
			return
		}
		failed := false
		for _, path := range args {
			id, ok := table.Identifier(path)
			if !ok {
				pretty.Warning("%q: volume not resolved", path)
				failed = true
				continue
			}
			common.Stdout("%s%s%s  %s  %s\n", pretty.Grey, id.Fingerprint(), pretty.Reset, id, path)
		}
		pretty.Guard(!failed, 2, "Some paths could not be resolved.")
	},
}

// groupReport buckets all given paths by volume in one pass and prints
// each bucket under its volume identifier.
func groupReport(table *samevol.Table, paths []string) {
	groups, missing := table.GroupByVolume(paths)
	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)
	for _, id := range ids {
		members := groups[samevol.ID(id)]
		sort.Strings(members)
		common.Stdout("%s%s%s  %s\n", pretty.Grey, samevol.ID(id).Fingerprint(), pretty.Reset, id)
		for _, member := range members {
			common.Stdout("  %s\n", member)
		}
	}
	for _, path := range missing {
		pretty.Warning("%q: volume not resolved", path)
	}
	pretty.Guard(len(missing) == 0, 2, "Some paths could not be resolved.")
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().BoolVarP(&groupFlag, "group", "g", false, "Group the paths by owning volume.")
}
