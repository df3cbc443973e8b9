package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Tetris",
	Long: `Start an interactive game.

Controls:
  Left/Right, A/D   - Move
  Up, X             - Rotate clockwise
  Down, S           - Soft drop
  Space             - Hard drop
  P/Esc             - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Gravity from 800ms down to 100ms
  normal - Gravity from 500ms down to 50ms
  hard   - Gravity from 300ms down to 30ms
  fixed  - Gravity stays at the configured base interval

The terminal belongs to the game, so logs are only written with --log-file.

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --seed 42 --log-file tetris.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	if _, err := loadConfig(logger); err != nil {
		return err
	}
	tetris.SetLogger(logger)
	tetris.SetConfigPath(flagConfig)
	if err := tetris.SetDifficultyPreset(flagDifficulty); err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(tetris.ID)
	if err != nil {
		return err
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		logger.Error("game exited with error", "error", err)
		return err
	}
	return nil
}
