package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Lurito/samevol"
	"github.com/Lurito/samevol/common"
	"github.com/Lurito/samevol/pretty"
)

var sameCmd = &cobra.Command{
	Use:     "same <path> <path>",
	Aliases: []string{"s"},
	Short:   "Tell whether two paths live on the same storage volume.",
	Long: `Tell whether two paths live on the same storage volume.
Exit code is 0 when they do and 1 when they do not or when either path
cannot be resolved at all.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		table := samevol.New()
		if !table.SameVolume(args[0], args[1]) {
			common.Stdout("%sfalse%s\n", pretty.Red, pretty.Reset)
			common.WaitLogs()
			os.Exit(1)
		}
		common.Stdout("%strue%s\n", pretty.Green, pretty.Reset)
	},
}

func init() {
	rootCmd.AddCommand(sameCmd)
}
