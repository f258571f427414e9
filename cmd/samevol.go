package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Lurito/samevol/common"
	"github.com/Lurito/samevol/pretty"
)

var (
	silentFlag    bool
	debugFlag     bool
	traceFlag     bool
	colorlessFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "samevol",
	Short: "Tell which storage volume owns a filesystem path.",
	Long: `samevol inspects Windows volume mount points, so that tools can avoid
cross volume copies and detect virtual disks mounted inside a host volume.
Drive letters lie; volume GUIDs do not.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		common.DefineVerbosityFlags(viper.GetBool("silent"), viper.GetBool("debug"), viper.GetBool("trace"))
		pretty.Colorless = pretty.Colorless || viper.GetBool("colorless")
		pretty.Setup()
	},
}

func Execute() {
	defer common.WaitLogs()
	if err := rootCmd.Execute(); err != nil {
		common.Fatal("samevol", err)
		common.WaitLogs()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, "silent", "s", false, "Be less verbose.")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Show debug messages during execution.")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "Show trace messages during execution (implies --debug).")
	rootCmd.PersistentFlags().BoolVar(&colorlessFlag, "colorless", false, "Disable colored output.")

	// every persistent flag also answers to a SAMEVOL_* environment variable
	viper.SetEnvPrefix("samevol")
	viper.AutomaticEnv()
	for _, name := range []string{"silent", "debug", "trace", "colorless"} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}
