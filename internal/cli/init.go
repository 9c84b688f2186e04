package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/senso/internal/config"
	"github.com/rileyhilliard/senso/internal/errors"
	"github.com/rileyhilliard/senso/internal/ui"
	"github.com/rileyhilliard/senso/pkg/sshutil"
)

// configDoc mirrors config.Config for YAML output with readable durations.
type configDoc struct {
	Version        int    `yaml:"version"`
	Interval       string `yaml:"interval"`
	History        int    `yaml:"history"`
	FanDefaultRPM  int    `yaml:"fan_default_rpm"`
	SensorsCommand string `yaml:"sensors_command"`
	Host           string `yaml:"host,omitempty"`
	SSHTimeout     string `yaml:"ssh_timeout"`
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Host           string // Pre-specified SSH host
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
}

// Init creates a new .senso.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		var overwrite bool

		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	sensorsCommand := cfg.SensorsCommand
	intervalText := cfg.Interval.String()
	sshHost := opts.Host

	if !opts.NonInteractive {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Sensors command").
					Description("Command whose output gets parsed").
					Placeholder("sensors").
					Value(&sensorsCommand).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("sensors command is required")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Refresh interval").
					Description("How often to sample (Go duration, e.g. 1s)").
					Placeholder("1s").
					Value(&intervalText).
					Validate(func(s string) error {
						d, err := time.ParseDuration(s)
						if err != nil {
							return fmt.Errorf("use a duration like 2s or 500ms")
						}
						if d < 100*time.Millisecond {
							return fmt.Errorf("interval must be at least 100ms")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("SSH host (optional)").
					Description("Read sensors from a remote machine instead of this one").
					Placeholder("user@gpubox (leave empty for local)").
					Value(&sshHost),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --force with defaults")
		}
	}

	cfg.SensorsCommand = sensorsCommand
	if interval, err := time.ParseDuration(intervalText); err == nil {
		cfg.Interval = interval
	}
	cfg.Host = strings.TrimSpace(sshHost)

	if err := config.Validate(cfg); err != nil {
		return err
	}

	// Test the SSH connection before saving a remote config.
	if cfg.Host != "" {
		if err := probeHost(cfg, opts.NonInteractive); err != nil {
			return err
		}
	}

	// Marshal to YAML. Durations go through a doc struct so the file says
	// "1s" instead of nanosecond integers.
	doc := configDoc{
		Version:        cfg.Version,
		Interval:       cfg.Interval.String(),
		History:        cfg.History,
		FanDefaultRPM:  cfg.FanDefaultRPM,
		SensorsCommand: cfg.SensorsCommand,
		Host:           cfg.Host,
		SSHTimeout:     cfg.SSHTimeout.String(),
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	// Add a header comment
	header := `# Senso configuration
# Run 'senso' to start the dashboard
# See: https://github.com/rileyhilliard/senso for documentation

`
	content := header + string(data)

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  senso            - Start the dashboard")
	fmt.Println("  senso snapshot   - Print one reading")

	return nil
}

// probeHost dials the configured SSH host. On failure the user can still
// choose to save the config and fix the connection later.
func probeHost(cfg *config.Config, nonInteractive bool) error {
	spinner := ui.NewSpinner("Testing connection to " + cfg.Host)
	spinner.Start()

	client, err := sshutil.Dial(cfg.Host, cfg.SSHTimeout)
	if err == nil {
		_ = client.Close()
		spinner.Success()
		fmt.Println()
		return nil
	}
	spinner.Fail()

	if nonInteractive {
		return errors.WrapWithCode(err, errors.ErrSSH,
			fmt.Sprintf("Connection to '%s' failed", cfg.Host),
			"Check that the host is reachable: ssh "+cfg.Host)
	}

	fmt.Printf("\n%s Connection to '%s' failed: %v\n\n", ui.SymbolFail, cfg.Host, err)

	var saveAnyway bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save config anyway? (You can fix the connection later)").
				Value(&saveAnyway),
		),
	)
	if formErr := form.Run(); formErr != nil || !saveAnyway {
		return errors.WrapWithCode(err, errors.ErrSSH,
			fmt.Sprintf("Connection to '%s' failed", cfg.Host),
			"Check that the host is reachable: ssh "+cfg.Host)
	}
	return nil
}

// initCommand is the implementation called by the cobra command.
func initCommand(hostFlag string, force bool) error {
	return Init(InitOptions{
		Host:      hostFlag,
		Overwrite: force,
		// A force init with a preset host works without prompts.
		NonInteractive: force && hostFlag != "",
	})
}
