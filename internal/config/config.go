// Package config provides YAML-based configuration loading for Tiny Hero.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tinyhero/internal/stage"
)

// ErrInvalid marks a configuration that fails validation.
var ErrInvalid = errors.New("config: invalid")

// Config is the full game configuration.
type Config struct {
	Stage   StageConfig   `yaml:"stage"`
	Pixels  PixelConfig   `yaml:"pixels"`
	Display DisplayConfig `yaml:"display"`
}

// StageConfig holds the course-building constants.
type StageConfig struct {
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	MinGap         float64 `yaml:"min_gap"`
	MaxGap         float64 `yaml:"max_gap"`
	StartMargin    float64 `yaml:"start_margin"`
	EndMargin      float64 `yaml:"end_margin"`
	MaxGimmicks    int     `yaml:"max_gimmicks"`
}

// PixelConfig defines the pixel budget.
type PixelConfig struct {
	Max      int `yaml:"max"`
	PerClear int `yaml:"per_clear"`
}

// DisplayConfig controls play-scene pacing. Tick counts are given at 60 ticks
// per second and scaled to the actual tick rate.
type DisplayConfig struct {
	ScrollScale float64 `yaml:"scroll_scale"` // multiplier on stage speed per tick
	ChangeTicks int     `yaml:"change_ticks"` // pause after a gimmick resolves
	AlertTicks  int     `yaml:"alert_ticks"`
	LogTicks    int     `yaml:"log_ticks"`
	LogLines    int     `yaml:"log_lines"`
	ClearTicks  int     `yaml:"clear_ticks"` // delay before the clear screen
	DeathTicks  int     `yaml:"death_ticks"` // delay before the game over screen
}

// Default returns the built-in configuration.
func Default() Config {
	p := stage.DefaultParams()
	return Config{
		Stage: StageConfig{
			BaseSpeed:      p.BaseSpeed,
			SpeedIncrement: p.SpeedIncrement,
			MinGap:         p.MinGap,
			MaxGap:         p.MaxGap,
			StartMargin:    p.StartMargin,
			EndMargin:      p.EndMargin,
			MaxGimmicks:    p.MaxGimmicks,
		},
		Pixels: PixelConfig{
			Max:      stage.MaxPixels,
			PerClear: stage.PixelsPerClear,
		},
		Display: DisplayConfig{
			ScrollScale: 1.0,
			ChangeTicks: 12,
			AlertTicks:  90,
			LogTicks:    120,
			LogLines:    4,
			ClearTicks:  30,
			DeathTicks:  72,
		},
	}
}

// StageParams converts the stage section for the generator.
func (c Config) StageParams() stage.Params {
	return stage.Params{
		BaseSpeed:      c.Stage.BaseSpeed,
		SpeedIncrement: c.Stage.SpeedIncrement,
		MinGap:         c.Stage.MinGap,
		MaxGap:         c.Stage.MaxGap,
		StartMargin:    c.Stage.StartMargin,
		EndMargin:      c.Stage.EndMargin,
		MaxGimmicks:    c.Stage.MaxGimmicks,
	}
}

// Validate reports every problem at once. The returned error matches ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	s := c.Stage
	if s.BaseSpeed <= 0 {
		fail("stage.base_speed must be positive, got %g", s.BaseSpeed)
	}
	if s.SpeedIncrement < 0 {
		fail("stage.speed_increment must not be negative, got %g", s.SpeedIncrement)
	}
	if s.MinGap <= 0 {
		fail("stage.min_gap must be positive, got %g", s.MinGap)
	}
	if s.MinGap > s.MaxGap {
		fail("stage.min_gap %g exceeds max_gap %g", s.MinGap, s.MaxGap)
	}
	if s.StartMargin < 0 || s.EndMargin < 0 {
		fail("stage margins must not be negative")
	}
	if s.MaxGimmicks < 1 {
		fail("stage.max_gimmicks must be at least 1, got %d", s.MaxGimmicks)
	}

	if c.Pixels.Max < 1 || c.Pixels.Max > stage.MaxPixels {
		fail("pixels.max must be in [1, %d], got %d", stage.MaxPixels, c.Pixels.Max)
	}
	if c.Pixels.PerClear < 0 {
		fail("pixels.per_clear must not be negative, got %d", c.Pixels.PerClear)
	}

	d := c.Display
	if d.ScrollScale <= 0 {
		fail("display.scroll_scale must be positive, got %g", d.ScrollScale)
	}
	if d.ChangeTicks < 0 || d.AlertTicks < 0 || d.LogTicks < 0 || d.ClearTicks < 0 || d.DeathTicks < 0 {
		fail("display tick counts must not be negative")
	}
	if d.LogLines < 1 {
		fail("display.log_lines must be at least 1, got %d", d.LogLines)
	}

	return errors.Join(errs...)
}
