package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/rileyhilliard/senso/internal/config"
	"github.com/rileyhilliard/senso/internal/errors"
	"github.com/rileyhilliard/senso/internal/sensors"
)

// snapshotCommand captures one reading and prints it to stdout.
func snapshotCommand(hostFlag string, asJSON bool) error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}

	source, closeSource := buildSource(cfg, hostFlag)
	defer closeSource()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.SSHTimeout)
	defer cancel()

	raw, err := source.Capture(ctx)
	if err != nil {
		return err
	}
	snap := sensors.Parse(raw)

	if asJSON {
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrSensors,
				"Failed to encode snapshot",
				"This shouldn't happen - please report this bug")
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Print(renderSnapshot(snap, stdoutColorizer()))
	return nil
}

// colorizer styles a value string for terminal output.
type colorizer func(value string, celsius float64) string

// stdoutColorizer returns a threshold-based colorizer when stdout is an
// interactive terminal, and a pass-through otherwise so piped output
// stays clean.
func stdoutColorizer() colorizer {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return func(value string, _ float64) string { return value }
	}

	output := termenv.NewOutput(os.Stdout)
	return func(value string, celsius float64) string {
		var color string
		switch {
		case celsius >= 90:
			color = "#FF0055"
		case celsius >= 70:
			color = "#FFAA00"
		default:
			color = "#39FF14"
		}
		return output.String(value).Foreground(output.Color(color)).String()
	}
}

// renderSnapshot formats a snapshot as human-readable text, one section
// per non-empty category.
func renderSnapshot(snap *sensors.Snapshot, colorize colorizer) string {
	var b strings.Builder

	for _, cat := range sensors.Categories() {
		readings := snap.Channels(cat)
		if len(readings) == 0 {
			continue
		}

		keys := make([]string, 0, len(readings))
		for key := range readings {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		b.WriteString(cat.String())
		b.WriteString("\n")
		for _, key := range keys {
			value := readings[key]
			if cat == sensors.FanSpeed {
				line := fmt.Sprintf("%.0f RPM", value)
				if maxRPM, ok := snap.FanMaxRPM[key]; ok {
					line += fmt.Sprintf(" (max %d)", maxRPM)
				}
				b.WriteString(fmt.Sprintf("  %-28s %s\n", key, line))
			} else {
				b.WriteString(fmt.Sprintf("  %-28s %s\n", key, colorize(fmt.Sprintf("%.1f°C", value), value)))
			}
		}
		b.WriteString("\n")
	}

	if b.Len() == 0 {
		return "No sensor channels detected.\n"
	}
	return b.String()
}
