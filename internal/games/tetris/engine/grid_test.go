package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow occupies every cell of row y except the listed columns.
func fillRow(g *Grid, y int, kind Kind, skip ...int) {
	for x := 0; x < g.W; x++ {
		skipped := false
		for _, s := range skip {
			if s == x {
				skipped = true
				break
			}
		}
		if !skipped {
			g.Set(x, y, kind)
		}
	}
}

func TestGridGetSetBounds(t *testing.T) {
	g := NewGrid(4, 3)

	g.Set(1, 2, T)
	assert.Equal(t, T, g.Get(1, 2))

	// Out of bounds writes are ignored, reads return None
	g.Set(-1, 0, I)
	g.Set(4, 0, I)
	g.Set(0, 3, I)
	assert.Equal(t, None, g.Get(-1, 0))
	assert.Equal(t, None, g.Get(0, 3))
	assert.Equal(t, 1, g.FilledCount())
}

func TestRowFull(t *testing.T) {
	g := NewGrid(5, 3)
	fillRow(g, 0, I)
	fillRow(g, 1, J, 4)

	assert.True(t, g.RowFull(0))
	assert.False(t, g.RowFull(1))
	assert.False(t, g.RowFull(2))
	assert.False(t, g.RowFull(-1))
	assert.Equal(t, []int{0}, g.FullRows())
}

func TestRowWithEmptyCellNeverComplete(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		g := NewGrid(10, 20)
		for i := range g.Cells {
			if rng.Intn(10) > 0 {
				g.Cells[i] = Kinds[rng.Intn(len(Kinds))]
			}
		}

		full := make(map[int]bool)
		for _, y := range g.FullRows() {
			full[y] = true
		}

		for y := 0; y < g.H; y++ {
			hasEmpty := false
			for x := 0; x < g.W; x++ {
				if g.Get(x, y) == None {
					hasEmpty = true
				}
			}
			if hasEmpty {
				assert.False(t, full[y], "trial %d: row %d has an empty cell but was counted complete", trial, y)
			} else {
				assert.True(t, full[y], "trial %d: row %d is complete but was not counted", trial, y)
			}
		}
	}
}

func TestClearRowsNoneComplete(t *testing.T) {
	g := NewGrid(4, 4)
	fillRow(g, 3, S, 0)
	fillRow(g, 2, Z, 1)

	out, rows := ClearRows(g)

	assert.Nil(t, rows)
	assert.True(t, out.Equal(g))
	assert.NotSame(t, g, out)
}

func TestClearRowsSingle(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(1, 1, T)
	fillRow(g, 2, O)
	g.Set(0, 3, L)

	out, rows := ClearRows(g)

	require.Equal(t, []int{2}, rows)
	assert.Equal(t, []Kind{None, None, None, None}, out.Row(0))
	assert.Equal(t, []Kind{None, None, None, None}, out.Row(1))
	assert.Equal(t, []Kind{None, T, None, None}, out.Row(2))
	assert.Equal(t, []Kind{L, None, None, None}, out.Row(3))
}

func TestClearRowsNonAdjacent(t *testing.T) {
	// Rows tagged by the column of their single marker cell.
	//   0: marker A at x=0
	//   1: marker B at x=1
	//   2: full
	//   3: marker C at x=2
	//   4: full
	//   5: marker D at x=3
	g := NewGrid(4, 6)
	g.Set(0, 0, I)
	g.Set(1, 1, O)
	fillRow(g, 2, T)
	g.Set(2, 3, S)
	fillRow(g, 4, Z)
	g.Set(3, 5, J)

	original := g.Clone()
	out, rows := ClearRows(g)

	require.Equal(t, []int{2, 4}, rows)
	assert.True(t, g.Equal(original), "input grid must not be modified")

	// Two empty rows inserted on top
	assert.Equal(t, []Kind{None, None, None, None}, out.Row(0))
	assert.Equal(t, []Kind{None, None, None, None}, out.Row(1))

	// Rows above both cleared rows fall by 2, preserving order
	assert.Equal(t, I, out.Get(0, 2))
	assert.Equal(t, O, out.Get(1, 3))

	// The row between the cleared rows falls by 1
	assert.Equal(t, S, out.Get(2, 4))

	// Rows below the lower cleared row stay put
	assert.Equal(t, J, out.Get(3, 5))

	assert.Equal(t, 4, out.FilledCount())
}

func TestClearRowsAllComplete(t *testing.T) {
	g := NewGrid(3, 3)
	for y := 0; y < 3; y++ {
		fillRow(g, y, L)
	}

	out, rows := ClearRows(g)

	assert.Equal(t, []int{0, 1, 2}, rows)
	assert.Equal(t, 0, out.FilledCount())
}

func TestFits(t *testing.T) {
	g := NewGrid(10, 20)
	g.Set(5, 19, T)

	tests := []struct {
		name     string
		piece    Piece
		expected bool
	}{
		{"spawn on empty board", Spawn(I, 10), true},
		{"partly above the top", Piece{Kind: I, Rotation: 1, X: 0, Y: -2}, true},
		{"fully above the top", Piece{Kind: O, Rotation: 0, X: 2, Y: -5}, true},
		{"left of the wall", Piece{Kind: I, Rotation: 0, X: -1, Y: 5}, false},
		{"right of the wall", Piece{Kind: I, Rotation: 0, X: 7, Y: 5}, false},
		{"below the floor", Piece{Kind: I, Rotation: 1, X: 0, Y: 17}, false},
		{"resting on the floor", Piece{Kind: I, Rotation: 1, X: 0, Y: 16}, true},
		{"overlapping locked cell", Piece{Kind: I, Rotation: 0, X: 2, Y: 19}, false},
		{"next to locked cell", Piece{Kind: I, Rotation: 0, X: 1, Y: 19}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Fits(g, tc.piece))
		})
	}
}
