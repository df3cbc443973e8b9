package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// Engine owns the grid, the falling piece, the score and the lifecycle of
// one game. It is not safe for concurrent use; a single driver calls the
// commands and Tick from one goroutine.
//
// Illegal input is never an error: a move or rotation that does not fit is
// rejected and leaves every field untouched. Once the game is over all
// commands are no-ops.
type Engine struct {
	rules Rules
	rng   *rand.Rand

	grid   *Grid
	active Piece
	next   Kind

	score    int
	lines    int
	level    int
	interval time.Duration

	phase Phase
}

// TickResult reports what a gravity step or hard drop did.
type TickResult struct {
	Moved    bool  // Piece descended one row
	Dropped  int   // Rows travelled by a hard drop
	Locked   bool  // Piece was written into the grid
	Cleared  []int // Removed row indices, top to bottom
	Points   int   // Score gained by this step
	LevelUp  bool  // Level increased
	GameOver bool  // Game is over after this step
}

// New creates an engine with the given rules and spawns the first piece.
// A nil rng is replaced by a time-seeded source.
func New(rules Rules, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	rules = rules.withDefaults()

	e := &Engine{
		rules: rules,
		rng:   rng,
		grid:  NewGrid(rules.Width, rules.Height),
		phase: PhaseSpawning,
	}
	e.level = rules.LevelFor(0)
	e.interval = rules.IntervalFor(e.level)
	e.next = e.randomKind()
	e.spawn()
	return e
}

// randomKind picks one of the seven kinds uniformly.
func (e *Engine) randomKind() Kind {
	return Kinds[e.rng.Intn(len(Kinds))]
}

func (e *Engine) setPhase(to Phase) {
	if !canTransition(e.phase, to) {
		panic(fmt.Sprintf("engine: illegal phase transition %s -> %s", e.phase, to))
	}
	e.phase = to
}

// spawn promotes the queued kind to the active piece, queues a new one and
// checks that the piece fits. Must be called in PhaseSpawning.
func (e *Engine) spawn() {
	e.active = Spawn(e.next, e.rules.Width)
	e.next = e.randomKind()

	if !Fits(e.grid, e.active) {
		e.setPhase(PhaseGameOver)
		return
	}
	e.setPhase(PhaseFalling)
}

// Validate reports whether the active piece would fit after shifting by
// (dx, dy) and taking the given rotation index. It never changes state.
func (e *Engine) Validate(dx, dy, rotation int) bool {
	return Fits(e.grid, e.active.Moved(dx, dy).Rotated(rotation))
}

// move shifts the active piece when the target position fits.
func (e *Engine) move(dx, dy int) bool {
	if e.phase == PhaseGameOver {
		return false
	}
	if !e.Validate(dx, dy, e.active.Rotation) {
		return false
	}
	e.active = e.active.Moved(dx, dy)
	e.setPhase(PhaseFalling)
	return true
}

// MoveLeft shifts the active piece one column left. Returns false if blocked.
func (e *Engine) MoveLeft() bool {
	return e.move(-1, 0)
}

// MoveRight shifts the active piece one column right. Returns false if blocked.
func (e *Engine) MoveRight() bool {
	return e.move(1, 0)
}

// SoftDrop moves the active piece one row down. Unlike Tick it never locks
// the piece; a blocked soft drop is simply rejected.
func (e *Engine) SoftDrop() bool {
	return e.move(0, 1)
}

// Rotate turns the active piece one step clockwise in place. There is no
// kick search: if the rotated shape collides the rotation is rejected.
func (e *Engine) Rotate() bool {
	if e.phase == PhaseGameOver {
		return false
	}
	next := e.active.NextRotation()
	if !e.Validate(0, 0, next) {
		return false
	}
	e.active = e.active.Rotated(next)
	e.setPhase(PhaseFalling)
	return true
}

// Tick is the gravity step. The piece descends one row if it can; otherwise
// it locks, complete rows are cleared and the next piece spawns.
func (e *Engine) Tick() TickResult {
	if e.phase == PhaseGameOver {
		return TickResult{GameOver: true}
	}
	if e.move(0, 1) {
		return TickResult{Moved: true}
	}
	return e.lockAndSpawn()
}

// HardDrop drops the active piece as far as it goes and locks it.
func (e *Engine) HardDrop() TickResult {
	if e.phase == PhaseGameOver {
		return TickResult{GameOver: true}
	}
	dropped := 0
	for e.move(0, 1) {
		dropped++
	}
	res := e.lockAndSpawn()
	res.Dropped = dropped
	return res
}

// lockAndSpawn runs Locking -> Cleared -> Spawning.
func (e *Engine) lockAndSpawn() TickResult {
	e.setPhase(PhaseLocking)
	e.lock()

	e.setPhase(PhaseCleared)
	res := e.clearLines()
	res.Locked = true

	e.setPhase(PhaseSpawning)
	e.spawn()
	res.GameOver = e.phase == PhaseGameOver
	return res
}

// lock writes the active piece into the grid. Cells above the top row
// have no grid cell and are dropped.
func (e *Engine) lock() {
	for _, c := range e.active.Cells() {
		e.grid.Set(c.X, c.Y, e.active.Kind)
	}
}

// clearLines removes complete rows and updates score, lines, level and
// gravity interval together.
func (e *Engine) clearLines() TickResult {
	compacted, rows := ClearRows(e.grid)
	if len(rows) == 0 {
		return TickResult{}
	}
	e.grid = compacted

	prevLevel := e.level
	points := e.rules.PointsFor(len(rows), prevLevel)
	e.score += points
	e.lines += len(rows)
	e.level = e.rules.LevelFor(e.lines)
	e.interval = e.rules.IntervalFor(e.level)

	return TickResult{
		Cleared: rows,
		Points:  points,
		LevelUp: e.level > prevLevel,
	}
}

// Grid returns a copy of the locked cells as [row][column].
func (e *Engine) Grid() [][]Kind {
	return e.grid.Rows()
}

// Cell returns the locked cell at (x, y), or None when out of bounds.
func (e *Engine) Cell(x, y int) Kind {
	return e.grid.Get(x, y)
}

// Active returns the falling piece.
func (e *Engine) Active() Piece {
	return e.active
}

// ActiveCells returns the absolute cells of the falling piece and its tag.
func (e *Engine) ActiveCells() ([4]Coord, Kind) {
	return e.active.Cells(), e.active.Kind
}

// Next returns the kind that spawns after the current piece locks.
func (e *Engine) Next() Kind {
	return e.next
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Level returns the current level, starting at 1.
func (e *Engine) Level() int {
	return e.level
}

// Lines returns the total number of cleared rows.
func (e *Engine) Lines() int {
	return e.lines
}

// IsGameOver reports whether the game has ended.
func (e *Engine) IsGameOver() bool {
	return e.phase == PhaseGameOver
}

// Phase returns the lifecycle phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// TickInterval returns the gravity interval for the current level.
func (e *Engine) TickInterval() time.Duration {
	return e.interval
}

// TickIntervalMs returns TickInterval in whole milliseconds.
func (e *Engine) TickIntervalMs() int {
	return int(e.interval / time.Millisecond)
}

// Rules returns the rules the engine was created with, defaults applied.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Width returns the board width.
func (e *Engine) Width() int {
	return e.rules.Width
}

// Height returns the board height.
func (e *Engine) Height() int {
	return e.rules.Height
}
