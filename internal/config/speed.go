package config

import (
	"fmt"
	"time"
)

// SpeedPreset is a named tick rate.
type SpeedPreset string

const (
	SpeedEasy   SpeedPreset = "easy"
	SpeedNormal SpeedPreset = "normal"
	SpeedHard   SpeedPreset = "hard"
	SpeedInsane SpeedPreset = "insane"
)

// SpeedPresets lists the presets from slowest to fastest.
var SpeedPresets = []SpeedPreset{SpeedEasy, SpeedNormal, SpeedHard, SpeedInsane}

// TickScale returns the multiplier applied to the configured tick interval.
func (p SpeedPreset) TickScale() float64 {
	switch p {
	case SpeedEasy:
		return 1.5
	case SpeedHard:
		return 0.6
	case SpeedInsane:
		return 0.35
	default:
		return 1.0
	}
}

// ParseSpeedPreset validates a preset name. An empty name means normal.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	if s == "" {
		return SpeedNormal, nil
	}
	for _, p := range SpeedPresets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown speed %q (want easy, normal, hard or insane)", ErrInvalidConfig, s)
}

// ApplySpeedPreset scales the movement tick. The food timer is wall-clock
// based and is left unchanged.
func ApplySpeedPreset(cfg *SnakeConfig, preset SpeedPreset) {
	scaled := time.Duration(float64(cfg.Timing.TickInterval) * preset.TickScale())
	cfg.Timing.TickInterval = max(scaled, 10*time.Millisecond)
}
