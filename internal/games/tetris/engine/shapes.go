package engine

import "fmt"

// shapeArt holds every distinct orientation of each kind as 4x4 art,
// clockwise from the spawn orientation. '#' marks an occupied cell.
// Orientation 0 always touches the top row of the bounding box.
var shapeArt = map[Kind][][4]string{
	I: {
		{
			"####",
			"....",
			"....",
			"....",
		},
		{
			".#..",
			".#..",
			".#..",
			".#..",
		},
	},
	O: {
		{
			".##.",
			".##.",
			"....",
			"....",
		},
	},
	T: {
		{
			".#..",
			"###.",
			"....",
			"....",
		},
		{
			".#..",
			".##.",
			".#..",
			"....",
		},
		{
			"###.",
			".#..",
			"....",
			"....",
		},
		{
			".#..",
			"##..",
			".#..",
			"....",
		},
	},
	S: {
		{
			".##.",
			"##..",
			"....",
			"....",
		},
		{
			"#...",
			"##..",
			".#..",
			"....",
		},
	},
	Z: {
		{
			"##..",
			".##.",
			"....",
			"....",
		},
		{
			"..#.",
			".##.",
			".#..",
			"....",
		},
	},
	J: {
		{
			"#...",
			"###.",
			"....",
			"....",
		},
		{
			".##.",
			".#..",
			".#..",
			"....",
		},
		{
			"###.",
			"..#.",
			"....",
			"....",
		},
		{
			".#..",
			".#..",
			"##..",
			"....",
		},
	},
	L: {
		{
			"..#.",
			"###.",
			"....",
			"....",
		},
		{
			".#..",
			".#..",
			".##.",
			"....",
		},
		{
			"###.",
			"#...",
			"....",
			"....",
		},
		{
			"##..",
			".#..",
			".#..",
			"....",
		},
	},
}

// shapes is the compiled lookup table indexed by kind, then rotation.
// It is written once in init and only read afterwards.
var shapes [L + 1][][4]Coord

func init() {
	for _, kind := range Kinds {
		arts := shapeArt[kind]
		shapes[kind] = make([][4]Coord, len(arts))
		for r, art := range arts {
			shapes[kind][r] = compileShape(kind, r, art)
		}
	}
}

// compileShape converts 4x4 art into four cell offsets in row-major order.
func compileShape(kind Kind, rotation int, art [4]string) [4]Coord {
	var cells [4]Coord
	n := 0
	for y, row := range art {
		for x, ch := range row {
			if ch != '#' {
				continue
			}
			if n == len(cells) {
				panic(fmt.Sprintf("engine: shape %s/%d has more than 4 cells", kind, rotation))
			}
			cells[n] = C(x, y)
			n++
		}
	}
	if n != len(cells) {
		panic(fmt.Sprintf("engine: shape %s/%d has %d cells", kind, rotation, n))
	}
	return cells
}

// RotationCount returns the number of distinct orientations of a kind:
// 1 for O, 2 for I, S and Z, 4 for T, J and L. Returns 0 for None.
func RotationCount(kind Kind) int {
	if !kind.Valid() {
		return 0
	}
	return len(shapes[kind])
}

// NextRotation returns (current + 1) mod RotationCount(kind).
func NextRotation(kind Kind, current int) int {
	return normalizeRotation(kind, current+1)
}

// ShapeCells returns the occupied offsets of a kind in the given orientation,
// relative to the bounding-box anchor. Any integer rotation is accepted and
// taken modulo the kind's rotation count. None yields four zero offsets.
func ShapeCells(kind Kind, rotation int) [4]Coord {
	if !kind.Valid() {
		return [4]Coord{}
	}
	return shapes[kind][normalizeRotation(kind, rotation)]
}

func normalizeRotation(kind Kind, rotation int) int {
	n := RotationCount(kind)
	if n == 0 {
		return 0
	}
	rotation %= n
	if rotation < 0 {
		rotation += n
	}
	return rotation
}
