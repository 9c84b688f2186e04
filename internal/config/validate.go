package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/senso/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but senso only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest senso: https://github.com/rileyhilliard/senso/releases")
	}

	if cfg.Interval < 100*time.Millisecond {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval %s is too short", cfg.Interval),
			"Use an interval of at least 100ms; the sensors command itself takes tens of milliseconds.")
	}

	if cfg.History < 2 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("History of %d samples is too small to graph", cfg.History),
			"Set 'history' to at least 2 (the default is 60).")
	}

	if cfg.FanDefaultRPM <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Default fan RPM must be positive, got %d", cfg.FanDefaultRPM),
			"Set 'fan_default_rpm' to your fans' typical rated speed (the default is 4000).")
	}

	if strings.TrimSpace(cfg.SensorsCommand) == "" {
		return errors.New(errors.ErrConfig,
			"Sensors command is empty",
			"Set 'sensors_command' to the command whose output should be parsed (the default is 'sensors').")
	}

	if cfg.Host != "" {
		if err := validateHostReference(cfg.Host); err != nil {
			return err
		}
	}

	return nil
}

// validateHostReference checks that a host looks like an SSH destination
// rather than a path or URL.
func validateHostReference(host string) error {
	if strings.Contains(host, "/") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Host '%s' contains a path separator", host),
			"Use a hostname, user@hostname, or an SSH config alias.")
	}
	if strings.Contains(host, " ") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Host '%s' contains whitespace", host),
			"Use a single SSH destination, not a command.")
	}
	return nil
}
