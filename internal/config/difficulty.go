package config

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// GravityCurve maps levels to gravity intervals for a configuration.
type GravityCurve struct {
	cfg   GravityConfig
	rules engine.Rules
}

// NewGravityCurve creates a curve from gravity settings.
func NewGravityCurve(cfg GravityConfig) *GravityCurve {
	return &GravityCurve{cfg: cfg, rules: cfg.rules()}
}

// Interval returns the gravity interval at a level (1-based), as the
// engine computes it.
func (g *GravityCurve) Interval(level int) time.Duration {
	return g.rules.IntervalFor(level)
}

// FloorLevel returns the first level at which the curve reaches its minimum.
// A constant curve returns 1.
func (g *GravityCurve) FloorLevel() int {
	if g.cfg.StepMs <= 0 || g.cfg.BaseMs <= g.cfg.MinMs {
		return 1
	}
	span := g.cfg.BaseMs - g.cfg.MinMs
	return (span+g.cfg.StepMs-1)/g.cfg.StepMs + 1
}

// Table returns the intervals from level 1 through FloorLevel.
func (g *GravityCurve) Table() []time.Duration {
	n := g.FloorLevel()
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = g.Interval(i + 1)
	}
	return out
}
