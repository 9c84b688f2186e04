package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/senso/internal/config"
	"github.com/rileyhilliard/senso/internal/errors"
	"github.com/rileyhilliard/senso/internal/history"
	"github.com/rileyhilliard/senso/internal/monitor"
	"github.com/rileyhilliard/senso/internal/sensors"
)

// monitorCommand starts the TUI dashboard.
func monitorCommand(hostFlag, intervalFlag string) error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}

	interval, err := resolveInterval(cfg, intervalFlag)
	if err != nil {
		return err
	}

	source, closeSource := buildSource(cfg, hostFlag)
	defer closeSource()

	store := history.NewStore(cfg.History, cfg.FanDefaultRPM)
	model := monitor.NewModel(source, store, interval, 0)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// resolveInterval applies the --interval flag over the config value.
func resolveInterval(cfg *config.Config, flag string) (time.Duration, error) {
	if flag == "" {
		return cfg.Interval, nil
	}

	interval, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid interval '%s'", flag),
			"Use a Go duration like 2s or 500ms")
	}
	if interval < 100*time.Millisecond {
		return 0, errors.New(errors.ErrConfig,
			fmt.Sprintf("Interval %s is too short", interval),
			"Use an interval of at least 100ms")
	}
	return interval, nil
}

// buildSource creates the sensor source from config and flags. The --host
// flag overrides the config host; an empty host reads locally. The
// returned func releases the source's resources.
func buildSource(cfg *config.Config, hostFlag string) (sensors.Source, func()) {
	host := cfg.Host
	if hostFlag != "" {
		host = hostFlag
	}

	if host == "" {
		return sensors.NewLocalSource(cfg.SensorsCommand), func() {}
	}

	src := sensors.NewSSHSource(host, cfg.SensorsCommand, cfg.SSHTimeout)
	return src, src.Close
}
