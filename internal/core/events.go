package core

import "fmt"

// EventKind identifies a notable game occurrence.
type EventKind int

const (
	EventLinesCleared EventKind = iota + 1
	EventLevelUp
	EventGameOver
)

// String returns the event name used in log output.
func (k EventKind) String() string {
	switch k {
	case EventLinesCleared:
		return "lines_cleared"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by a game in StepResult. Value carries the kind-specific
// number: rows removed, new level or final score.
type Event struct {
	Kind  EventKind
	Value int
}

func (e Event) String() string {
	return fmt.Sprintf("%s(%d)", e.Kind, e.Value)
}
