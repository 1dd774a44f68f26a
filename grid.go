package seamcarve

import "fmt"

// grid is a dense row-major matrix. Every two-dimensional buffer of the
// pipeline (pixels, energy, cumulative cost, column indices) is backed by one.
type grid[T any] struct {
	width  int
	height int
	cells  []T
}

func newGrid[T any](height, width int) *grid[T] {
	return &grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
}

// offset returns the flat index of (row, col) and panics outside of the grid.
func (g *grid[T]) offset(row, col int) int {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		panic(fmt.Sprintf("seamcarve: (row %d, col %d) out of range [%dx%d]", row, col, g.height, g.width))
	}
	return row*g.width + col
}

func (g *grid[T]) at(row, col int) T {
	return g.cells[g.offset(row, col)]
}

func (g *grid[T]) set(row, col int, v T) {
	g.cells[g.offset(row, col)] = v
}

// row returns the backing slice of a single row.
func (g *grid[T]) row(y int) []T {
	start := g.offset(y, 0)
	return g.cells[start : start+g.width]
}

// withoutColumns returns a copy of g one cell narrower, dropping cols[y] from every row y.
// The columns must already be validated against the grid width.
func (g *grid[T]) withoutColumns(cols []int) *grid[T] {
	dst := newGrid[T](g.height, g.width-1)
	for y := 0; y < g.height; y++ {
		src, out := g.row(y), dst.row(y)
		x := cols[y]
		copy(out[:x], src[:x])
		copy(out[x:], src[x+1:])
	}
	return dst
}
