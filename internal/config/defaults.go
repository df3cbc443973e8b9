package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the reference configuration. It matches the
// embedded defaults/tetris.yaml and is used when that file cannot be parsed.
// No preset is set, so gravity values from a config file are kept.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Gravity: GravityConfig{
			BaseMs: 500,
			StepMs: 50,
			MinMs:  50,
		},
		Scoring: ScoringConfig{
			LinePoints:    100,
			LinesPerLevel: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
