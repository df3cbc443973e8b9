package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// newLogger builds the command logger. Output goes to --log-file when set,
// otherwise to fallback. The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the configuration from the global flags, applies the
// difficulty preset and validates the result.
func loadConfig(logger *log.Logger) (config.TetrisConfig, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	if preset == "" {
		preset = cfg.Difficulty.Preset
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	logger.Debug("config loaded", "source", src, "preset", cfg.Difficulty.Preset,
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height))
	return cfg, nil
}
