// Package config loads and validates the slyboard YAML configuration.
//
// Discovery order: the --config override, then ./slyboard.yaml, then
// $XDG_CONFIG_HOME/slyboard/config.yaml. No file at all means defaults —
// slyboard runs usefully unconfigured. Values can also be supplied through
// SLYBOARD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/slyboard/slyboard/internal/activewindow"
	"github.com/slyboard/slyboard/internal/history"
)

// DefaultPollInterval matches the tick rate the daemon has always used.
const DefaultPollInterval = 750 * time.Millisecond

const cwdFileName = "slyboard.yaml"

// Config is the root of the YAML document.
type Config struct {
	Clipboard Clipboard `mapstructure:"clipboard"`
}

// Clipboard configures the history core and the poll loop.
type Clipboard struct {
	HistoryLimit int           `mapstructure:"history_limit"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	ActiveWindow ActiveWindow  `mapstructure:"active_window"`
}

// ActiveWindow selects the capture backend and the suppression blacklist.
type ActiveWindow struct {
	Backend   string   `mapstructure:"backend"`
	Command   Command  `mapstructure:"command"`
	Blacklist []string `mapstructure:"blacklist"`
}

// Command is the user-supplied program for the "command" backend.
type Command struct {
	Program string   `mapstructure:"program"`
	Args    []string `mapstructure:"args"`
}

// Loaded pairs a parsed config with the file it came from. Path is empty
// when no file was found and defaults apply.
type Loaded struct {
	Path   string
	Config Config
}

// Load reads the configuration from override when non-empty, from the first
// discovered file otherwise, falling back to defaults when none exists.
func Load(override string) (*Loaded, error) {
	path := override
	if path == "" {
		path = Discover()
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("SLYBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &Loaded{Path: path, Config: cfg}, nil
}

// Discover returns the first existing config file from the search order, or
// "" when none exists.
func Discover() string {
	for _, path := range SearchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// SearchPaths lists the discovery candidates in order.
func SearchPaths() []string {
	paths := []string{cwdFileName}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "slyboard", "config.yaml"))
	}
	return paths
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("clipboard.history_limit", history.DefaultHistoryLimit)
	v.SetDefault("clipboard.poll_interval", DefaultPollInterval)
	v.SetDefault("clipboard.active_window.backend", activewindow.BackendAuto)
}

// Validate rejects configurations the core must never see: an unknown
// backend name, a command backend without a program, blank blacklist
// entries, and non-positive limits or intervals.
func (c *Config) Validate() error {
	cb := c.Clipboard
	if cb.HistoryLimit <= 0 {
		return fmt.Errorf("clipboard.history_limit must be positive, got %d", cb.HistoryLimit)
	}
	if cb.PollInterval <= 0 {
		return fmt.Errorf("clipboard.poll_interval must be positive, got %s", cb.PollInterval)
	}

	switch cb.ActiveWindow.Backend {
	case activewindow.BackendAuto, activewindow.BackendDisabled:
	case activewindow.BackendCommand:
		if strings.TrimSpace(cb.ActiveWindow.Command.Program) == "" {
			return errors.New("clipboard.active_window.command.program cannot be empty")
		}
	default:
		return fmt.Errorf("clipboard.active_window.backend must be %q, %q, or %q, got %q",
			activewindow.BackendAuto, activewindow.BackendDisabled, activewindow.BackendCommand,
			cb.ActiveWindow.Backend)
	}

	for i, value := range cb.ActiveWindow.Blacklist {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("clipboard.active_window.blacklist[%d] cannot be empty", i)
		}
	}
	return nil
}

// Selection maps the validated active-window config onto the provider
// factory's input.
func (aw ActiveWindow) Selection() activewindow.Selection {
	return activewindow.Selection{
		Backend: aw.Backend,
		Program: aw.Command.Program,
		Args:    aw.Command.Args,
	}
}
