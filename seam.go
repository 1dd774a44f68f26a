package seamcarve

import (
	"github.com/esimov/seamcarve/utils"
	"github.com/pkg/errors"
)

// Path is a vertical seam: Path[y] is the column removed from row y.
type Path []int

// RecoverSeam backtracks the lowest energy seam through a completed table.
//
// The bottom endpoint is the first minimum of the last row scanned left to right.
// Walking up, the next column is the smallest of the three cells above the
// current one (clamped at the borders), preferring left, then middle, then right on ties.
func RecoverSeam(t *SeamTable, height, width int) (Path, error) {
	if height < 1 || width < 1 || height != t.Height() || width != t.Width() {
		return nil, errors.Wrapf(ErrInvalidDimensions,
			"cannot recover a %dx%d seam from a %dx%d table", height, width, t.Height(), t.Width())
	}
	path := make(Path, height)

	last := t.cells.row(height - 1)
	minX := 0
	for x := range last {
		if last[x] < last[minX] {
			minX = x
		}
	}
	path[height-1] = minX

	for y := height - 2; y >= 0; y-- {
		x := path[y+1]
		left, right := neighbors(x, width)
		row := t.cells.row(y)

		switch l, m, r := row[left], row[x], row[right]; {
		case l <= m && l <= r:
			path[y] = left
		case m <= l && m <= r:
			path[y] = x
		default:
			path[y] = right
		}
	}
	return path, nil
}

// Seam recovers the lowest energy seam of the table.
func (t *SeamTable) Seam() Path {
	path, _ := RecoverSeam(t, t.Height(), t.Width())
	return path
}

// Validate reports whether the path is a connected seam of an image of the given width.
func (p Path) Validate(width int) error {
	for y, x := range p {
		if x < 0 || x >= width {
			return errors.Wrapf(ErrSeamOutOfRange, "column %d at row %d, width %d", x, y, width)
		}
		if y > 0 && utils.Abs(x-p[y-1]) > 1 {
			return errors.Wrapf(ErrSeamDisconnected, "rows %d and %d jump from column %d to %d", y-1, y, p[y-1], x)
		}
	}
	return nil
}
