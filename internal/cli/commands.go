package cli

import (
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	monitorHostFlag     string
	monitorIntervalFlag string
	snapshotHostFlag    string
	snapshotJSONFlag    bool
	initHostFlag        string
	initForce           bool
)

// monitorCmd starts the TUI dashboard.
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Start the live sensor dashboard",
	Long: `Start the real-time TUI dashboard.

The dashboard refreshes on a fixed interval, keeping a rolling history
per sensor channel for sparkline graphs. Fan speeds show load against
each fan's rated maximum, learned from the sensors output.

Examples:
  senso monitor
  senso monitor --interval 1s
  senso monitor --host gpubox`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return monitorCommand(monitorHostFlag, monitorIntervalFlag)
	},
}

// snapshotCmd captures one reading and prints it.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one sensor reading and exit",
	Long: `Capture a single sensor reading and print it to stdout.

By default prints a human-readable summary, colorized when stdout is a
terminal. With --json, prints the parsed snapshot as JSON for scripting.

Examples:
  senso snapshot
  senso snapshot --json | jq .cpu_temps
  senso snapshot --host gpubox`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return snapshotCommand(snapshotHostFlag, snapshotJSONFlag)
	},
}

// initCmd creates a new .senso.yaml configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .senso.yaml configuration",
	Long: `Initialize a new senso configuration file.

Creates a .senso.yaml file in the current directory with sensible
defaults. Guides you through the settings with interactive prompts.

Examples:
  senso init
  senso init --host gpubox
  senso init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initHostFlag, initForce)
	},
}

func init() {
	monitorCmd.Flags().StringVar(&monitorHostFlag, "host", "", "SSH host to read sensors from")
	monitorCmd.Flags().StringVar(&monitorIntervalFlag, "interval", "", "Refresh interval (e.g. 2s, 500ms)")

	snapshotCmd.Flags().StringVar(&snapshotHostFlag, "host", "", "SSH host to read sensors from")
	snapshotCmd.Flags().BoolVar(&snapshotJSONFlag, "json", false, "Print the snapshot as JSON")

	initCmd.Flags().StringVar(&initHostFlag, "host", "", "SSH host to preconfigure")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config without asking")

	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(initCmd)
}
