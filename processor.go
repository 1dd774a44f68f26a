package seamcarve

import (
	"image/color"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/esimov/seamcarve/utils"
	"github.com/pkg/errors"
)

// DefaultSeamColor is the color used to paint the removed seams in debug mode.
const DefaultSeamColor = "#ff0000"

// SeamCarver is the interface implemented by Processor.
// It takes an image and returns the resized one.
type SeamCarver interface {
	Resize(*Image) (*Image, error)
}

var _ SeamCarver = (*Processor)(nil)

// Resize is a convenience wrapper around the SeamCarver interface.
func Resize(s SeamCarver, img *Image) (*Image, error) {
	return s.Resize(img)
}

// Processor options
type Processor struct {
	// NewWidth is the target width. With Percentage set it is
	// the percentage of the width to remove instead.
	NewWidth   int
	Percentage bool
	// Debug keeps the original size and paints every removed pixel with SeamColor.
	Debug     bool
	SeamColor string
	// EnergyFile, if not empty, receives the energy map of the first iteration.
	EnergyFile string
	Logger     *log.Logger
}

// Result is the outcome of a carving run.
type Result struct {
	// Image is the carved image.
	Image *Image
	// Seams lists the removed seams in order, each one in the
	// coordinates of the image it was removed from.
	Seams []Path
	// Energy is the energy map of the source image.
	Energy *EnergyMap

	source  *Image
	removed *grid[bool]
}

// Overlay returns the source image with every removed pixel painted in c.
func (r *Result) Overlay(c color.Color) *Image {
	cr, cg, cb, _ := c.RGBA()
	dst := r.source.Clone()
	for i, gone := range r.removed.cells {
		if gone {
			dst.pix.cells[i] = rgb{uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8)}
		}
	}
	return dst
}

func (p *Processor) logger() *log.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return log.Default()
}

// targetWidth resolves the requested width against the source width.
func (p *Processor) targetWidth(width int) (int, error) {
	target := p.NewWidth
	if p.Percentage {
		if p.NewWidth < 0 || p.NewWidth >= 100 {
			return 0, errors.Errorf("percentage should be in the [0, 100) range, got %d", p.NewWidth)
		}
		target = width - int(float64(width)*float64(p.NewWidth)/100)
	}
	if target < 1 {
		return 0, errors.Wrapf(ErrMinimumWidth, "new width %d", target)
	}
	if target > width {
		return 0, errors.Errorf("new width %d should be less than the image width %d", target, width)
	}
	return target, nil
}

// Carve removes vertical seams from img one at a time until the target width is reached.
// Each iteration recomputes the energy map, the seam table and the seam from scratch
// on the image produced by the previous iteration.
func (p *Processor) Carve(img *Image) (*Result, error) {
	target, err := p.targetWidth(img.Width())
	if err != nil {
		return nil, err
	}
	l := p.logger()
	start := time.Now()

	res := &Result{
		Seams:   make([]Path, 0, img.Width()-target),
		source:  img,
		removed: newGrid[bool](img.Height(), img.Width()),
	}
	// cols maps every column of the current image back to the source image.
	cols := newGrid[int](img.Height(), img.Width())
	for y := 0; y < cols.height; y++ {
		for x := range cols.row(y) {
			cols.set(y, x, x)
		}
	}

	curr := img
	for i := 0; curr.Width() > target; i++ {
		c := NewCarver(curr)
		if i == 0 {
			res.Energy = c.Energy
		}
		next, err := c.Remove()
		if err != nil {
			return nil, errors.Wrapf(err, "iteration %d", i)
		}
		for y, x := range c.Seam {
			res.removed.set(y, cols.at(y, x), true)
		}
		cols = cols.withoutColumns(c.Seam)
		res.Seams = append(res.Seams, c.Seam)

		l.Debug("seam removed",
			"iteration", i,
			"width", next.Width(),
			"cost", c.Table.At(c.Height-1, c.Seam[c.Height-1]),
		)
		curr = next
	}
	if res.Energy == nil {
		// Nothing was removed: hand back a copy so the result never aliases the source.
		res.Energy = ComputeEnergy(img)
		curr = img.Clone()
	}
	res.Image = curr

	l.Debug("image carved",
		"from", img.Width(),
		"to", curr.Width(),
		"height", curr.Height(),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return res, nil
}

// Resize returns the carved image, or the seam overlay when Debug is set.
func (p *Processor) Resize(img *Image) (*Image, error) {
	res, err := p.Carve(img)
	if err != nil {
		return nil, err
	}
	if err := p.saveEnergy(res.Energy); err != nil {
		return nil, err
	}
	if p.Debug {
		seamColor := p.SeamColor
		if seamColor == "" {
			seamColor = DefaultSeamColor
		}
		return res.Overlay(utils.HexToRGBA(seamColor)), nil
	}
	return res.Image, nil
}

func (p *Processor) saveEnergy(e *EnergyMap) error {
	if p.EnergyFile == "" {
		return nil
	}
	if err := imaging.Save(e.Image(), p.EnergyFile); err != nil {
		return errors.Wrapf(err, "could not save the energy map to %s", p.EnergyFile)
	}
	p.logger().Debug("energy map saved", "path", p.EnergyFile)
	return nil
}

// Process decodes the image read from r, resizes it and encodes the result into w.
// Sources and destinations backed by a .bin file use the raw pixel format.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	img, err := decodeImage(r)
	if err != nil {
		return err
	}
	res, err := Resize(p, img)
	if err != nil {
		return err
	}
	if f, ok := w.(*os.File); ok && isRawFormat(f.Name()) {
		return WriteBin(f, res)
	}
	return encodeImage(w, res.NRGBA())
}
