package config

import "fmt"

// SpeedPreset names a game speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
	SpeedTurbo  SpeedPreset = "turbo"
)

// FramesForPreset returns the frames per tick for a speed preset.
func FramesForPreset(preset SpeedPreset) (int, error) {
	switch preset {
	case SpeedSlow:
		return 6, nil
	case SpeedNormal:
		return 4, nil
	case SpeedFast:
		return 2, nil
	case SpeedTurbo:
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: unknown speed %q (slow, normal, fast, turbo)", ErrInvalid, preset)
	}
}

// ApplySpeedPreset sets the console pacing from a preset.
// An empty preset leaves the configuration unchanged.
func ApplySpeedPreset(cfg *Config, preset SpeedPreset) error {
	if preset == "" {
		return nil
	}
	frames, err := FramesForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Console.FramesPerTick = frames
	return nil
}
