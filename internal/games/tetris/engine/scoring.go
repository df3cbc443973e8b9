package engine

import "time"

// Rules holds the board size and the scoring/gravity constants.
// Zero fields fall back to DefaultRules.
type Rules struct {
	Width  int // Board width in cells
	Height int // Board height in cells

	LinePoints    int // Points per cleared row, multiplied by the level
	LinesPerLevel int // Cleared rows needed to advance one level

	BaseInterval time.Duration // Gravity interval at level 1
	IntervalStep time.Duration // Interval reduction per level
	MinInterval  time.Duration // Fastest gravity interval
}

// DefaultRules returns the reference rules: a 10x20 board, 100 points per
// row times level, a level every 10 rows and gravity from 500ms down to 50ms
// in 50ms steps.
func DefaultRules() Rules {
	return Rules{
		Width:         10,
		Height:        20,
		LinePoints:    100,
		LinesPerLevel: 10,
		BaseInterval:  500 * time.Millisecond,
		IntervalStep:  50 * time.Millisecond,
		MinInterval:   50 * time.Millisecond,
	}
}

// withDefaults fills zero or negative fields from DefaultRules.
// IntervalStep may be zero (constant gravity) but not negative.
func (r Rules) withDefaults() Rules {
	def := DefaultRules()
	if r.Width <= 0 {
		r.Width = def.Width
	}
	if r.Height <= 0 {
		r.Height = def.Height
	}
	if r.LinePoints <= 0 {
		r.LinePoints = def.LinePoints
	}
	if r.LinesPerLevel <= 0 {
		r.LinesPerLevel = def.LinesPerLevel
	}
	if r.BaseInterval <= 0 {
		r.BaseInterval = def.BaseInterval
	}
	if r.IntervalStep < 0 {
		r.IntervalStep = def.IntervalStep
	}
	if r.MinInterval <= 0 {
		r.MinInterval = def.MinInterval
	}
	return r
}

// LevelFor returns the level reached after clearing the given number of rows:
// lines / LinesPerLevel + 1.
func (r Rules) LevelFor(lines int) int {
	if lines < 0 {
		lines = 0
	}
	return lines/r.LinesPerLevel + 1
}

// IntervalFor returns the gravity interval for a level:
// max(MinInterval, BaseInterval - (level-1)*IntervalStep).
func (r Rules) IntervalFor(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	interval := r.BaseInterval - time.Duration(level-1)*r.IntervalStep
	if interval < r.MinInterval {
		return r.MinInterval
	}
	return interval
}

// PointsFor returns the score awarded for clearing rows at a level.
func (r Rules) PointsFor(rows, level int) int {
	return rows * r.LinePoints * level
}
