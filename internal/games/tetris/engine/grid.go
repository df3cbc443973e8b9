package engine

// Grid is the well of locked cells.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	Cells []Kind
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]Kind, w*h),
	}
}

func (g *Grid) index(x, y int) int {
	return y*g.W + x
}

// InBounds returns true if (x, y) is inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns the cell at (x, y), or None when out of bounds.
func (g *Grid) Get(x, y int) Kind {
	if !g.InBounds(x, y) {
		return None
	}
	return g.Cells[g.index(x, y)]
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, k Kind) {
	if g.InBounds(x, y) {
		g.Cells[g.index(x, y)] = k
	}
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) []Kind {
	row := make([]Kind, g.W)
	if y >= 0 && y < g.H {
		copy(row, g.Cells[g.index(0, y):g.index(0, y+1)])
	}
	return row
}

// RowFull reports whether every cell of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= g.H {
		return false
	}
	for x := 0; x < g.W; x++ {
		if g.Cells[g.index(x, y)] == None {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all complete rows, top to bottom.
func (g *Grid) FullRows() []int {
	var rows []int
	for y := 0; y < g.H; y++ {
		if g.RowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	count := 0
	for _, k := range g.Cells {
		if k != None {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Kind, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{W: g.W, H: g.H, Cells: cells}
}

// Rows returns the grid as a freshly allocated [row][column] slice.
func (g *Grid) Rows() [][]Kind {
	rows := make([][]Kind, g.H)
	for y := range rows {
		rows[y] = g.Row(y)
	}
	return rows
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, k := range g.Cells {
		if k != other.Cells[i] {
			return false
		}
	}
	return true
}

// Fits reports whether piece p can occupy its cells on grid g.
// Each cell needs a column in [0, W) and a row below H. Rows above the top
// (negative) are allowed and not checked for occupancy; all other cells
// must be empty.
func Fits(g *Grid, p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= g.W || c.Y >= g.H {
			return false
		}
		if c.Y >= 0 && g.Cells[g.index(c.X, c.Y)] != None {
			return false
		}
	}
	return true
}

// ClearRows removes every complete row and returns the compacted grid along
// with the removed row indices (top to bottom). Surviving rows keep their
// relative order and settle to the bottom; the same number of empty rows is
// inserted at the top. The input grid is not modified. When no row is
// complete the returned grid is an unchanged copy and the slice is nil.
func ClearRows(g *Grid) (*Grid, []int) {
	full := g.FullRows()
	if len(full) == 0 {
		return g.Clone(), nil
	}

	out := NewGrid(g.W, g.H)
	dst := g.H - 1
	next := len(full) - 1
	for y := g.H - 1; y >= 0; y-- {
		if next >= 0 && full[next] == y {
			next--
			continue
		}
		copy(out.Cells[out.index(0, dst):out.index(0, dst+1)], g.Cells[g.index(0, y):g.index(0, y+1)])
		dst--
	}
	return out, full
}
