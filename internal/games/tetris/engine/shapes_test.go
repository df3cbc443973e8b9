package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotationCounts(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected int
	}{
		{I, 2},
		{O, 1},
		{T, 4},
		{S, 2},
		{Z, 2},
		{J, 4},
		{L, 4},
		{None, 0},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, RotationCount(tc.kind))
		})
	}
}

func TestShapeTableWellFormed(t *testing.T) {
	for _, kind := range Kinds {
		for r := 0; r < RotationCount(kind); r++ {
			cells := ShapeCells(kind, r)

			seen := make(map[Coord]bool)
			for _, c := range cells {
				assert.True(t, c.X >= 0 && c.X < 4 && c.Y >= 0 && c.Y < 4,
					"%s/%d: offset %v outside 4x4 box", kind, r, c)
				assert.False(t, seen[c], "%s/%d: duplicate offset %v", kind, r, c)
				seen[c] = true
			}
		}

		// Spawn orientation must reach the top row of the box.
		top := false
		for _, c := range ShapeCells(kind, 0) {
			if c.Y == 0 {
				top = true
			}
		}
		assert.True(t, top, "%s: rotation 0 does not touch row 0", kind)
	}
}

func TestShapeOrientationsDistinct(t *testing.T) {
	for _, kind := range Kinds {
		n := RotationCount(kind)
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				assert.NotEqual(t, ShapeCells(kind, a), ShapeCells(kind, b),
					"%s: rotations %d and %d are identical", kind, a, b)
			}
		}
	}
}

func TestShapeCellsWrapsRotation(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		rotation int
		same     int
	}{
		{"T wraps forward", T, 5, 1},
		{"T wraps negative", T, -1, 3},
		{"I wraps forward", I, 3, 1},
		{"O any rotation", O, 7, 0},
		{"S large", S, 100, 0},
		{"L negative large", L, -6, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, ShapeCells(tc.kind, tc.same), ShapeCells(tc.kind, tc.rotation))
		})
	}
}

func TestNextRotation(t *testing.T) {
	assert.Equal(t, 1, NextRotation(T, 0))
	assert.Equal(t, 0, NextRotation(T, 3))
	assert.Equal(t, 0, NextRotation(I, 1))
	assert.Equal(t, 0, NextRotation(O, 0))
	assert.Equal(t, 1, NextRotation(S, 4))
}

func TestSpawnAnchor(t *testing.T) {
	p := Spawn(T, 10)
	assert.Equal(t, 3, p.X)
	assert.Equal(t, 0, p.Y)
	assert.Equal(t, 0, p.Rotation)

	wide := Spawn(I, 16)
	assert.Equal(t, 6, wide.X)
}

func TestPieceCellsAreAnchored(t *testing.T) {
	p := Piece{Kind: I, Rotation: 0, X: 2, Y: 5}
	cells := p.Cells()
	require.Len(t, cells, 4)
	for i, c := range cells {
		assert.Equal(t, 5, c.Y)
		assert.Equal(t, 2+i, c.X)
	}
}

func TestPieceValueMethodsDoNotMutate(t *testing.T) {
	p := Piece{Kind: J, Rotation: 1, X: 4, Y: 4}
	moved := p.Moved(1, 2)
	rotated := p.Rotated(6)

	assert.Equal(t, Piece{Kind: J, Rotation: 1, X: 4, Y: 4}, p)
	assert.Equal(t, Piece{Kind: J, Rotation: 1, X: 5, Y: 6}, moved)
	assert.Equal(t, 2, rotated.Rotation)
}
