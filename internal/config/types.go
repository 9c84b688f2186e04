package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .senso.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Interval between sensor captures.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// History is the number of samples retained per channel.
	History int `yaml:"history" mapstructure:"history"`

	// FanDefaultRPM is the assumed rated fan speed until a real max-RPM
	// clause is observed.
	FanDefaultRPM int `yaml:"fan_default_rpm" mapstructure:"fan_default_rpm"`

	// SensorsCommand is the shell command whose output gets parsed.
	SensorsCommand string `yaml:"sensors_command" mapstructure:"sensors_command"`

	// Host is an optional SSH destination. When set, the sensors command
	// runs there instead of locally. Can be a hostname, user@hostname, or
	// an SSH config alias.
	Host string `yaml:"host" mapstructure:"host"`

	// SSHTimeout bounds the SSH dial when Host is set.
	SSHTimeout time.Duration `yaml:"ssh_timeout" mapstructure:"ssh_timeout"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:        CurrentConfigVersion,
		Interval:       time.Second,
		History:        60,
		FanDefaultRPM:  4000,
		SensorsCommand: "sensors",
		SSHTimeout:     10 * time.Second,
	}
}
