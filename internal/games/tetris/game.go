// Package tetris adapts the falling-block engine to the platform: it maps
// input actions to engine commands, turns wall-clock ticks into gravity
// steps and draws the well into a core.Screen.
package tetris

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "tetris"

// Game implements registry.Game on top of engine.Engine.
type Game struct {
	eng   *engine.Engine
	rules *engine.Rules // Fixed rules; nil means load from config on Reset

	tick     uint64
	tickRate int
	// gravity is the time accumulated towards the next gravity step,
	// multiplied by tickRate so every platform tick adds exactly one second.
	gravity time.Duration

	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. An unknown name clears
// it and is reported.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	difficultyPreset = p
	return err
}

// logger receives config problems found when a game starts.
var logger = log.New(io.Discard)

// SetLogger sets the logger used for config problems. Nil discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a game whose rules are loaded from the configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithRules creates a game with fixed rules, bypassing configuration.
func NewWithRules(rules engine.Rules) *Game {
	return &Game{rules: &rules}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// loadRules resolves the rules for a new game. A config that cannot be
// loaded or does not validate is logged and replaced by the defaults.
func loadRules() engine.Rules {
	cfg, _, err := config.Load(configPath)
	if err != nil {
		logger.Warn("config not loaded, using defaults", "error", err)
		cfg = config.DefaultTetrisConfig()
	}

	preset := difficultyPreset
	if preset == "" {
		preset = cfg.Difficulty.Preset
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		logger.Warn("config rejected, using defaults", "error", err)
		cfg = config.DefaultTetrisConfig()
	}
	return cfg.Rules()
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	var rules engine.Rules
	if g.rules != nil {
		rules = *g.rules
	} else {
		rules = loadRules()
	}

	g.eng = engine.New(rules, rand.New(rand.NewSource(cfg.Seed)))
	g.tick = 0
	g.tickRate = cfg.Rate()
	g.gravity = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false

	g.checkScreenSize()
}

// Step advances the game by one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.eng.IsGameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event

	if in.Has(core.ActionLeft) {
		g.eng.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.eng.MoveRight()
	}
	if in.Has(core.ActionUp) || in.Has(core.ActionRotate) {
		g.eng.Rotate()
	}
	if in.Has(core.ActionDown) {
		g.eng.SoftDrop()
	}

	if in.Has(core.ActionJump) {
		events = g.collect(events, g.eng.HardDrop())
		g.gravity = 0
		return core.StepResult{State: g.State(), Events: events}
	}

	events = g.applyGravity(events)
	return core.StepResult{State: g.State(), Events: events}
}

// applyGravity runs as many engine ticks as the elapsed time allows. A lock
// restarts the accumulator so the new piece gets a full interval.
func (g *Game) applyGravity(events []core.Event) []core.Event {
	g.gravity += time.Second
	for {
		step := g.eng.TickInterval() * time.Duration(g.tickRate)
		if g.gravity < step {
			break
		}
		g.gravity -= step

		res := g.eng.Tick()
		events = g.collect(events, res)
		if res.Locked || res.GameOver {
			g.gravity = 0
			break
		}
	}
	return events
}

// collect converts an engine result into platform events.
func (g *Game) collect(events []core.Event, res engine.TickResult) []core.Event {
	if n := len(res.Cleared); n > 0 {
		events = append(events, core.Event{Kind: core.EventLinesCleared, Value: n})
	}
	if res.LevelUp {
		events = append(events, core.Event{Kind: core.EventLevelUp, Value: g.eng.Level()})
	}
	if res.GameOver {
		events = append(events, core.Event{Kind: core.EventGameOver, Value: g.eng.Score()})
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.eng.Score(),
		Level:    g.eng.Level(),
		Lines:    g.eng.Lines(),
		GameOver: g.eng.IsGameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Engine exposes the underlying engine for headless drivers.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}
