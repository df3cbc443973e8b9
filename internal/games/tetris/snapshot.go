package tetris

import (
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
// Board rows use the one-letter kind names with '.' for empty cells.
type Snapshot struct {
	Tick       uint64
	Score      int
	Level      int
	Lines      int
	IntervalMs int
	Active     engine.Piece
	Next       engine.Kind
	Board      []string
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.eng.IsGameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	grid := g.eng.Grid()
	board := make([]string, len(grid))
	for y, row := range grid {
		var sb strings.Builder
		for _, k := range row {
			sb.WriteString(k.String())
		}
		board[y] = sb.String()
	}

	return Snapshot{
		Tick:       g.tick,
		Score:      g.eng.Score(),
		Level:      g.eng.Level(),
		Lines:      g.eng.Lines(),
		IntervalMs: g.eng.TickIntervalMs(),
		Active:     g.eng.Active(),
		Next:       g.eng.Next(),
		Board:      board,
		State:      state,
	}
}
