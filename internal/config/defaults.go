package config

import (
	_ "embed"
)

//go:embed defaults/tilesnake.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Console: ConsoleConfig{
			Seed:          1234,
			FPS:           60,
			FramesPerTick: 4,
		},
		Display: DisplayConfig{
			Border:     true,
			ShowStatus: true,
			ShowHelp:   true,
		},
		Keys: KeysConfig{
			Up:    []string{"up", "w", "k"},
			Down:  []string{"down", "s", "j"},
			Left:  []string{"left", "a", "h"},
			Right: []string{"right", "d", "l"},
			Quit:  []string{"q", "ctrl+c"},
		},
		Server: ServerConfig{
			Address:     ":23235",
			IdleTimeout: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
