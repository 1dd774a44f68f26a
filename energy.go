package seamcarve

import (
	"image"
	"image/color"
	"math"

	"github.com/esimov/seamcarve/utils"
)

// maxEnergy is the largest value an energy cell can hold.
// Dual-gradient energy of 8-bit channels peaks at floor(sqrt(6*255*255)/10) = 62,
// so the clamp only guards against future changes of the scale factor.
const maxEnergy = math.MaxUint8

// EnergyMap holds the per-pixel dual-gradient energy of an image.
type EnergyMap struct {
	cells *grid[uint8]
}

// ComputeEnergy computes the dual-gradient energy of every pixel.
//
// Neighbors are looked up with wraparound: the left neighbor of column 0 is
// the last column and the pixel above row 0 is the last row. For each channel
// the horizontal gradient is left minus right and the vertical gradient is
// below minus above. The stored value is floor(sqrt(sum of the six squared
// gradients) / 10), clamped to 255.
func ComputeEnergy(img *Image) *EnergyMap {
	width, height := img.Width(), img.Height()
	e := &EnergyMap{cells: newGrid[uint8](height, width)}

	for y := 0; y < height; y++ {
		up := (y - 1 + height) % height
		down := (y + 1) % height

		for x := 0; x < width; x++ {
			left := (x - 1 + width) % width
			right := (x + 1) % width

			l, r := img.pix.at(y, left), img.pix.at(y, right)
			u, d := img.pix.at(up, x), img.pix.at(down, x)

			var raw int
			for ch := Red; ch <= Blue; ch++ {
				dx := int(l[ch]) - int(r[ch])
				dy := int(d[ch]) - int(u[ch])
				raw += dx*dx + dy*dy
			}
			level := int(math.Sqrt(float64(raw))) / 10
			e.cells.set(y, x, uint8(utils.Min(level, maxEnergy)))
		}
	}
	return e
}

// Height returns the number of rows.
func (e *EnergyMap) Height() int { return e.cells.height }

// Width returns the number of columns.
func (e *EnergyMap) Width() int { return e.cells.width }

// At returns the energy of the pixel at (row, col).
func (e *EnergyMap) At(row, col int) uint8 {
	return e.cells.at(row, col)
}

// Image renders the energy map as a grayscale image.
func (e *EnergyMap) Image() *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, e.Width(), e.Height()))
	for y := 0; y < e.Height(); y++ {
		for x, v := range e.cells.row(y) {
			dst.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return dst
}

// RGB renders the energy map as an Image with the energy replicated into all three channels.
func (e *EnergyMap) RGB() *Image {
	img := &Image{pix: newGrid[rgb](e.Height(), e.Width())}
	for i, v := range e.cells.cells {
		img.pix.cells[i] = rgb{v, v, v}
	}
	return img
}
