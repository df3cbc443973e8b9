package engine

// Phase is a state of the engine lifecycle.
//
//	Spawning -> Falling            new piece fits
//	Spawning -> GameOver           new piece collides (terminal)
//	Falling  -> Falling            accepted move, rotation or descent
//	Falling  -> Locking            tick that cannot descend
//	Locking  -> Cleared            cells written into the grid
//	Cleared  -> Spawning           always, with or without cleared rows
//
// Commands run synchronously, so between calls the engine is observed in
// Falling or GameOver only.
type Phase uint8

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseCleared
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseCleared:
		return "cleared"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// canTransition reports whether from -> to is an edge of the lifecycle.
func canTransition(from, to Phase) bool {
	switch from {
	case PhaseSpawning:
		return to == PhaseFalling || to == PhaseGameOver
	case PhaseFalling:
		return to == PhaseFalling || to == PhaseLocking
	case PhaseLocking:
		return to == PhaseCleared
	case PhaseCleared:
		return to == PhaseSpawning
	default:
		return false
	}
}
