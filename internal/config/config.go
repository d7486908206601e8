// Package config provides YAML-based configuration loading for the snake
// game: tick periods, loop tuning, key-hold timings and file locations.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MinQueueDepth mirrors the event loop's lower bound.
const MinQueueDepth = 8

// Config is the complete runtime configuration.
type Config struct {
	Tick   TickConfig   `yaml:"tick"`
	Loop   LoopConfig   `yaml:"loop"`
	Input  InputConfig  `yaml:"input"`
	Paths  PathsConfig  `yaml:"paths"`
	Notify NotifyConfig `yaml:"notify"`
	Seed   int64        `yaml:"seed"` // 0 = time based
}

// TickConfig defines the simulation periods.
type TickConfig struct {
	Normal time.Duration `yaml:"normal"`
	Fast   time.Duration `yaml:"fast"` // holding the current direction
	Slow   time.Duration `yaml:"slow"` // holding the opposite direction
}

// LoopConfig tunes the event loop.
type LoopConfig struct {
	QueueDepth int           `yaml:"queue_depth"`
	IdleRedraw time.Duration `yaml:"idle_redraw"`
}

// InputConfig defines how terminal auto-repeat is turned into key holds.
type InputConfig struct {
	RepeatDelay time.Duration `yaml:"repeat_delay"` // wait for the first repeat
	RepeatGap   time.Duration `yaml:"repeat_gap"`   // max gap between repeats
	LongPress   time.Duration `yaml:"long_press"`
}

// PathsConfig locates the files the game writes.
type PathsConfig struct {
	Save string `yaml:"save"`
	DB   string `yaml:"db"`
	Log  string `yaml:"log"`
}

// NotifyConfig toggles the audible cues.
type NotifyConfig struct {
	Bell bool `yaml:"bell"`
}

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		Tick: TickConfig{
			Normal: 250 * time.Millisecond,
			Fast:   125 * time.Millisecond,
			Slow:   500 * time.Millisecond,
		},
		Loop: LoopConfig{
			QueueDepth: MinQueueDepth,
			IdleRedraw: 100 * time.Millisecond,
		},
		Input: InputConfig{
			RepeatDelay: 550 * time.Millisecond,
			RepeatGap:   120 * time.Millisecond,
			LongPress:   400 * time.Millisecond,
		},
		Paths: PathsConfig{
			Save: "~/.snake/snake2.save",
			DB:   "~/.snake/history.db",
			Log:  "~/.snake/snake.log",
		},
		Notify: NotifyConfig{Bell: true},
	}
}

// Validate checks the timings and clamps the queue depth.
func (c *Config) Validate() error {
	var errs []error
	for name, d := range map[string]time.Duration{
		"tick.normal":        c.Tick.Normal,
		"tick.fast":          c.Tick.Fast,
		"tick.slow":          c.Tick.Slow,
		"loop.idle_redraw":   c.Loop.IdleRedraw,
		"input.repeat_delay": c.Input.RepeatDelay,
		"input.repeat_gap":   c.Input.RepeatGap,
		"input.long_press":   c.Input.LongPress,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, d))
		}
	}
	if c.Tick.Fast >= c.Tick.Normal {
		errs = append(errs, fmt.Errorf("tick.fast (%v) must be shorter than tick.normal (%v)", c.Tick.Fast, c.Tick.Normal))
	}
	if c.Tick.Slow <= c.Tick.Normal {
		errs = append(errs, fmt.Errorf("tick.slow (%v) must be longer than tick.normal (%v)", c.Tick.Slow, c.Tick.Normal))
	}
	for name, p := range map[string]string{
		"paths.save": c.Paths.Save,
		"paths.db":   c.Paths.DB,
	} {
		if p == "" {
			errs = append(errs, fmt.Errorf("%s must be set", name))
		}
	}
	if c.Loop.QueueDepth < MinQueueDepth {
		c.Loop.QueueDepth = MinQueueDepth
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Resolve returns the paths with a leading "~" expanded.
func (p PathsConfig) Resolve() (PathsConfig, error) {
	var err error
	for _, s := range []*string{&p.Save, &p.DB, &p.Log} {
		if *s, err = ExpandHome(*s); err != nil {
			return p, err
		}
	}
	return p, nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
