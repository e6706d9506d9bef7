package cmd

import (
	"github.com/spf13/cobra"

	"github.com/user/sitelog-check/pkg/logging"
)

var rootCmd = &cobra.Command{
	Use:   "sitelog-check",
	Short: "Compliance checker for construction supervision logs",
	Long: `sitelog-check evaluates supervision logs (监理日志) and patrol records
(巡视记录) against a configurable rule catalogue and reports missing items,
risky wording, unclosed issue loops and logic conflicts, with an optional
AI review pass.`,
}

var DebugMode bool

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&DebugMode, "debug", false, "Enable debug logging")
	cobra.OnInitialize(func() {
		logging.DebugEnabled = DebugMode
	})
}
