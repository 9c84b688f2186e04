// Package cli implements the senso command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a command function for the actual work. The general
// structure follows a clean separation between:
//
//   - Command definitions (cobra.Command instances)
//   - Command functions (monitorCommand, snapshotCommand, Init)
//   - Implementation details (in other internal packages)
//
// # Command Structure
//
// The root command is "senso" with subcommands for different operations:
//
//	senso monitor     - Real-time sensor dashboard (also the default)
//	senso snapshot    - One-shot capture, printed to stdout
//	senso init        - Create .senso.yaml config
//	senso version     - Print version information
//
// Running senso with no subcommand starts the monitor.
//
// # Flag Handling
//
// The global --config flag is defined on the root command and available to
// all subcommands. Command-specific flags like --interval and --host are
// defined on individual commands and override config file values.
package cli
