// Package engine implements the falling-block puzzle rules: the cell grid,
// tetromino shapes and rotation, collision checks, locking, line clearing,
// scoring and the spawn/game-over lifecycle.
// It has no rendering, input or timing code; a driver feeds it commands and
// gravity ticks and reads the resulting state back.
package engine

import "fmt"

// Kind identifies a tetromino type. The zero value None marks an empty cell,
// the other values are also the tag written into the grid when a piece locks.
type Kind uint8

const (
	None Kind = iota
	I
	O
	T
	S
	Z
	J
	L
)

// Kinds lists the seven playable tetrominoes in table order.
var Kinds = [7]Kind{I, O, T, S, Z, J, L}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case None:
		return "."
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	default:
		return "?"
	}
}

// Valid reports whether k is one of the seven playable kinds.
func (k Kind) Valid() bool {
	return k >= I && k <= L
}

// Coord is a board position. X is the column, Y is the row (row 0 is the top).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Piece is a tetromino placed on the board.
// X and Y anchor the top-left corner of its 4x4 bounding box.
type Piece struct {
	Kind     Kind
	Rotation int
	X        int
	Y        int
}

// Spawn returns a piece of the given kind at the spawn anchor for a board
// of the given width: centered horizontally, row 0, rotation 0.
func Spawn(kind Kind, boardWidth int) Piece {
	return Piece{
		Kind:     kind,
		Rotation: 0,
		X:        boardWidth/2 - 2,
		Y:        0,
	}
}

// Cells returns the absolute board cells the piece occupies.
func (p Piece) Cells() [4]Coord {
	cells := ShapeCells(p.Kind, p.Rotation)
	for i := range cells {
		cells[i] = cells[i].Add(p.X, p.Y)
	}
	return cells
}

// Moved returns a copy of the piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece with the given rotation index,
// normalized to the kind's rotation-state count.
func (p Piece) Rotated(rotation int) Piece {
	p.Rotation = normalizeRotation(p.Kind, rotation)
	return p
}

// NextRotation returns the rotation index one clockwise step from the
// piece's current orientation.
func (p Piece) NextRotation() int {
	return NextRotation(p.Kind, p.Rotation)
}
