package seamcarve

import "github.com/pkg/errors"

// Carver holds the intermediate results of a single carving iteration.
// A new Carver must be built for every seam: none of its buffers
// are valid for the narrower image produced by Remove.
type Carver struct {
	Width  int
	Height int
	Energy *EnergyMap
	Table  *SeamTable
	Seam   Path

	img *Image
}

// NewCarver runs the energy, table and path recovery stages over img.
func NewCarver(img *Image) *Carver {
	c := &Carver{
		Width:  img.Width(),
		Height: img.Height(),
		img:    img,
	}
	c.Energy = ComputeEnergy(img)
	c.Table = ComputeSeamTable(c.Energy)
	c.Seam = c.Table.Seam()

	return c
}

// Remove returns the source image without the recovered seam.
func (c *Carver) Remove() (*Image, error) {
	return RemoveSeam(c.img, c.Seam)
}

// RemoveSeam returns a copy of img one column narrower, dropping the pixel
// path[y] from every row y and shifting the pixels right of it one column to the left.
func RemoveSeam(img *Image, path Path) (*Image, error) {
	if err := checkSeam(img.Height(), img.Width(), path); err != nil {
		return nil, err
	}
	return &Image{pix: img.pix.withoutColumns(path)}, nil
}

func checkSeam(height, width int, path Path) error {
	if width < 2 {
		return errors.Wrapf(ErrMinimumWidth, "cannot remove a seam from a %dx%d image", height, width)
	}
	if len(path) != height {
		return errors.Wrapf(ErrSeamLength, "got %d columns for %d rows", len(path), height)
	}
	return path.Validate(width)
}
