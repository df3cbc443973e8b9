package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then play",
	Long: `Shows a difficulty picker with the gravity range of every preset,
then starts the game with the chosen preset. Other flags work as for 'play'.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

// presetItems builds one menu entry per preset, applied on top of cfg.
func presetItems(cfg config.TetrisConfig) []tui.MenuItem {
	items := make([]tui.MenuItem, 0, len(config.Presets))
	for _, p := range config.Presets {
		c := cfg
		config.ApplyPreset(&c, p)
		curve := config.NewGravityCurve(c.Gravity)

		detail := fmt.Sprintf("%v -> %v by level %d", curve.Interval(1), curve.Interval(curve.FloorLevel()), curve.FloorLevel())
		if curve.FloorLevel() == 1 {
			detail = fmt.Sprintf("%v at every level", curve.Interval(1))
		}
		items = append(items, tui.MenuItem{
			Value:  string(p),
			Title:  strings.ToUpper(string(p[:1])) + string(p[1:]),
			Detail: detail,
		})
	}
	return items
}

func runMenu(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	closeLog()
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	initial := flagDifficulty
	if initial == "" {
		initial = string(cfg.Difficulty.Preset)
	}
	if initial == "" {
		initial = string(config.DifficultyNormal)
	}

	choice, err := tui.RunMenu("T E T R I S", presetItems(cfg), initial, width, height)
	if err != nil {
		return err
	}
	if choice == nil {
		return nil
	}

	flagDifficulty = choice.Value
	return runPlay(cmd, args)
}
