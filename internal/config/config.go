// Package config provides YAML-based configuration loading for the console
// and its hosts.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the full tilesnake configuration.
type Config struct {
	Console ConsoleConfig `yaml:"console"`
	Display DisplayConfig `yaml:"display"`
	Keys    KeysConfig    `yaml:"keys"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// ConsoleConfig defines the emulated console and frame driver.
type ConsoleConfig struct {
	Seed          uint32 `yaml:"seed"`            // Food generator seed
	FPS           int    `yaml:"fps"`             // Vertical-blank rate
	FramesPerTick int    `yaml:"frames_per_tick"` // Vertical blanks between game ticks
}

// DisplayConfig defines how the tile map is shown in a terminal.
type DisplayConfig struct {
	Border     bool `yaml:"border"`      // Draw a frame around the playfield
	ShowStatus bool `yaml:"show_status"` // Show length/food line under the playfield
	ShowHelp   bool `yaml:"show_help"`   // Show key help line
}

// KeysConfig lists terminal key names bound to each console button.
type KeysConfig struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Quit  []string `yaml:"quit"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string `yaml:"address"`      // host:port to listen on
	HostKeyPath string `yaml:"host_key"`     // Empty means ~/.tilesnake/host_key
	IdleTimeout int    `yaml:"idle_timeout"` // Minutes before idle sessions are closed
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks that the configuration can drive a console.
func (c Config) Validate() error {
	if c.Console.FPS < 1 {
		return fmt.Errorf("%w: console.fps must be at least 1, got %d", ErrInvalid, c.Console.FPS)
	}
	if c.Console.FramesPerTick < 1 {
		return fmt.Errorf("%w: console.frames_per_tick must be at least 1, got %d", ErrInvalid, c.Console.FramesPerTick)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: server.idle_timeout must not be negative, got %d", ErrInvalid, c.Server.IdleTimeout)
	}
	for name, keys := range map[string][]string{
		"up": c.Keys.Up, "down": c.Keys.Down, "left": c.Keys.Left, "right": c.Keys.Right, "quit": c.Keys.Quit,
	} {
		if len(keys) == 0 {
			return fmt.Errorf("%w: keys.%s has no bindings", ErrInvalid, name)
		}
	}
	return nil
}

// TickInterval returns the wall-clock time between game ticks.
func (c ConsoleConfig) TickInterval() time.Duration {
	return time.Duration(c.FramesPerTick) * time.Second / time.Duration(max(c.FPS, 1))
}

// IdleTimeoutDuration returns the server idle timeout.
func (c ServerConfig) IdleTimeoutDuration() time.Duration {
	return time.Duration(c.IdleTimeout) * time.Minute
}
