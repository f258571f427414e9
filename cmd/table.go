package cmd

import (
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/Lurito/samevol"
	"github.com/Lurito/samevol/common"
	"github.com/Lurito/samevol/pretty"
)

var yamlFlag bool

var tableCmd = &cobra.Command{
	Use:     "table",
	Aliases: []string{"t"},
	Short:   "List every known mount point and its volume identifier.",
	Run: func(cmd *cobra.Command, args []string) {
		table := samevol.New()
		count, err := table.Rebuild()
		pretty.Guard(err == nil, 1, "Volume table build failed, reason: %v", err)
		entries, err := table.Entries()
		pretty.Guard(err == nil, 1, "Volume table read failed, reason: %v", err)

		if yamlFlag {
			plain := make(map[string]string, len(entries))
			for mountPoint, id := range entries {
				plain[mountPoint] = string(id)
			}
			content, err := yaml.Marshal(plain)
			pretty.Guard(err == nil, 3, "Could not render table, reason: %v", err)
			common.Stdout("%s", string(content))
			return
		}

		mountPoints := make([]string, 0, len(entries))
		for mountPoint := range entries {
			mountPoints = append(mountPoints, mountPoint)
		}
		sort.Strings(mountPoints)
		for _, mountPoint := range mountPoints {
			id := entries[mountPoint]
			common.Stdout("%-28s %s%s%s  %s\n", mountPoint, pretty.Grey, id.Fingerprint(), pretty.Reset, id)
		}
		common.Stdout("%d mount points.\n", count)
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().BoolVarP(&yamlFlag, "yaml", "y", false, "Dump the table as YAML for machine consumption.")
}
