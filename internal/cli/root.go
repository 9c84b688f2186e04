package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configFlag is the global --config override.
var configFlag string

// rootCmd is the base command. With no subcommand it starts the monitor.
var rootCmd = &cobra.Command{
	Use:   "senso",
	Short: "Hardware sensor monitor",
	Long: `Senso watches your machine's hardware sensors in the terminal.

It parses the output of the lm-sensors 'sensors' command into CPU
temperatures, fan speeds, storage temperatures, and other temperature
channels, keeps a rolling history per channel, and renders live graphs.

Examples:
  senso                  Start the dashboard
  senso snapshot         Print one reading and exit
  senso snapshot --json  Print one reading as JSON
  senso init             Create a .senso.yaml config`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return monitorCommand(monitorHostFlag, monitorIntervalFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file")

	// The bare root runs the monitor, so it shares the monitor flags.
	rootCmd.Flags().StringVar(&monitorHostFlag, "host", "", "SSH host to read sensors from")
	rootCmd.Flags().StringVar(&monitorIntervalFlag, "interval", "", "Refresh interval (e.g. 2s, 500ms)")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
