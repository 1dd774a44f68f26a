package seamcarve

import "math"

// SeamTable stores, for every pixel, the minimum cumulative energy of any
// connected top-to-bottom path ending at that pixel.
type SeamTable struct {
	cells *grid[float64]
}

// ComputeSeamTable fills the cumulative energy table row by row:
//
//   - the first row is a copy of the energy map;
//   - every other cell is its own energy plus the minimum of the three cells
//     above it (up-left, up, up-right).
//
// At the left and right borders the missing diagonal is replaced by the cell
// directly above. There is no wraparound here, unlike the energy computation.
func ComputeSeamTable(e *EnergyMap) *SeamTable {
	width, height := e.Width(), e.Height()
	t := &SeamTable{cells: newGrid[float64](height, width)}

	first := t.cells.row(0)
	for x, v := range e.cells.row(0) {
		first[x] = float64(v)
	}

	for y := 1; y < height; y++ {
		prev, curr := t.cells.row(y-1), t.cells.row(y)
		energy := e.cells.row(y)

		for x := 0; x < width; x++ {
			left, right := neighbors(x, width)
			min := math.Min(math.Min(prev[left], prev[x]), prev[right])
			curr[x] = float64(energy[x]) + min
		}
	}
	return t
}

// neighbors returns the columns adjacent to x, clamped to x at the image borders.
func neighbors(x, width int) (left, right int) {
	left, right = x, x
	if x > 0 {
		left = x - 1
	}
	if x < width-1 {
		right = x + 1
	}
	return left, right
}

// Height returns the number of rows.
func (t *SeamTable) Height() int { return t.cells.height }

// Width returns the number of columns.
func (t *SeamTable) Width() int { return t.cells.width }

// At returns the cumulative energy at (row, col).
func (t *SeamTable) At(row, col int) float64 {
	return t.cells.at(row, col)
}

// Row returns a copy of the cumulative energies of row y.
func (t *SeamTable) Row(y int) []float64 {
	return append([]float64(nil), t.cells.row(y)...)
}
