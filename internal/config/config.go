// Package config loads the Tetris rules from YAML and turns difficulty
// presets into a gravity curve.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// minBoardSide is the smallest width or height that fits every piece.
const minBoardSide = 4

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Gravity    GravityConfig    `yaml:"gravity"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the well dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines the gravity interval curve in milliseconds.
type GravityConfig struct {
	BaseMs int `yaml:"base_ms"` // Interval at level 1
	StepMs int `yaml:"step_ms"` // Reduction per level, 0 keeps gravity constant
	MinMs  int `yaml:"min_ms"`  // Floor of the curve
}

// ScoringConfig defines points and leveling.
type ScoringConfig struct {
	LinePoints    int `yaml:"line_points"`
	LinesPerLevel int `yaml:"lines_per_level"`
}

// DifficultyConfig selects a gravity preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the difficulty presets from easiest to hardest.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. An empty name is accepted and
// means "keep the configured gravity".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyPreset reshapes the gravity curve for a difficulty preset.
// Normal is the reference curve; fixed keeps the base interval for every
// level. An empty preset leaves the configured values alone.
func ApplyPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.Preset = preset

	switch preset {
	case DifficultyEasy:
		cfg.Gravity = GravityConfig{BaseMs: 800, StepMs: 50, MinMs: 100}
	case DifficultyNormal:
		cfg.Gravity = GravityConfig{BaseMs: 500, StepMs: 50, MinMs: 50}
	case DifficultyHard:
		cfg.Gravity = GravityConfig{BaseMs: 300, StepMs: 30, MinMs: 30}
	case DifficultyFixed:
		cfg.Gravity.StepMs = 0
	}
}

// Validate reports every problem in the configuration at once.
func (c TetrisConfig) Validate() error {
	var errs []error

	if c.Board.Width < minBoardSide {
		errs = append(errs, fmt.Errorf("board.width must be at least %d, got %d", minBoardSide, c.Board.Width))
	}
	if c.Board.Height < minBoardSide {
		errs = append(errs, fmt.Errorf("board.height must be at least %d, got %d", minBoardSide, c.Board.Height))
	}
	if c.Gravity.BaseMs <= 0 {
		errs = append(errs, fmt.Errorf("gravity.base_ms must be positive, got %d", c.Gravity.BaseMs))
	}
	if c.Gravity.StepMs < 0 {
		errs = append(errs, fmt.Errorf("gravity.step_ms must not be negative, got %d", c.Gravity.StepMs))
	}
	if c.Gravity.MinMs <= 0 {
		errs = append(errs, fmt.Errorf("gravity.min_ms must be positive, got %d", c.Gravity.MinMs))
	}
	if c.Gravity.MinMs > c.Gravity.BaseMs && c.Gravity.BaseMs > 0 {
		errs = append(errs, fmt.Errorf("gravity.min_ms (%d) exceeds gravity.base_ms (%d)", c.Gravity.MinMs, c.Gravity.BaseMs))
	}
	if c.Scoring.LinePoints <= 0 {
		errs = append(errs, fmt.Errorf("scoring.line_points must be positive, got %d", c.Scoring.LinePoints))
	}
	if c.Scoring.LinesPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("scoring.lines_per_level must be positive, got %d", c.Scoring.LinesPerLevel))
	}
	if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Rules converts the configuration into engine rules.
func (c TetrisConfig) Rules() engine.Rules {
	r := c.Gravity.rules()
	r.Width = c.Board.Width
	r.Height = c.Board.Height
	r.LinePoints = c.Scoring.LinePoints
	r.LinesPerLevel = c.Scoring.LinesPerLevel
	return r
}

// rules returns engine rules carrying only the gravity curve.
func (g GravityConfig) rules() engine.Rules {
	return engine.Rules{
		BaseInterval: time.Duration(g.BaseMs) * time.Millisecond,
		IntervalStep: time.Duration(g.StepMs) * time.Millisecond,
		MinInterval:  time.Duration(g.MinMs) * time.Millisecond,
	}
}
