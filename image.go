package seamcarve

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Channel selects one of the three color components of a pixel.
type Channel int

// The color channels in storage order.
const (
	Red Channel = iota
	Green
	Blue
)

type rgb [3]uint8

// Image is an opaque RGB raster of fixed dimensions. The pixels are
// kept row-major; every stage of the pipeline returns a new Image
// instead of mutating its input.
type Image struct {
	pix *grid[rgb]
}

// NewImage allocates a black image of the given size.
func NewImage(height, width int) (*Image, error) {
	if height < 1 || width < 1 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "cannot create a %dx%d image", height, width)
	}
	return &Image{pix: newGrid[rgb](height, width)}, nil
}

// Height returns the number of rows.
func (img *Image) Height() int { return img.pix.height }

// Width returns the number of columns.
func (img *Image) Width() int { return img.pix.width }

// Bounds returns the image rectangle anchored at the origin.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.pix.width, img.pix.height)
}

// Channel returns a single color component of the pixel at (row, col).
func (img *Image) Channel(row, col int, ch Channel) uint8 {
	return img.pix.at(row, col)[ch]
}

// RGB returns the color components of the pixel at (row, col).
func (img *Image) RGB(row, col int) (r, g, b uint8) {
	px := img.pix.at(row, col)
	return px[Red], px[Green], px[Blue]
}

// Set stores the pixel at (row, col).
func (img *Image) Set(row, col int, r, g, b uint8) {
	img.pix.set(row, col, rgb{r, g, b})
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	dst := newGrid[rgb](img.pix.height, img.pix.width)
	copy(dst.cells, img.pix.cells)
	return &Image{pix: dst}
}

// FromImage converts any image type to an Image. The alpha channel is discarded.
func FromImage(src image.Image) (*Image, error) {
	nrgba := imaging.Clone(src)
	b := nrgba.Bounds()

	img, err := NewImage(b.Dy(), b.Dx())
	if err != nil {
		return nil, err
	}
	for y := 0; y < b.Dy(); y++ {
		row := img.pix.row(y)
		for x := range row {
			i := nrgba.PixOffset(x, y)
			row[x] = rgb{nrgba.Pix[i], nrgba.Pix[i+1], nrgba.Pix[i+2]}
		}
	}
	return img, nil
}

// NRGBA converts the image to a fully opaque *image.NRGBA.
func (img *Image) NRGBA() *image.NRGBA {
	dst := image.NewNRGBA(img.Bounds())
	for y := 0; y < img.Height(); y++ {
		for x, px := range img.pix.row(y) {
			dst.SetNRGBA(x, y, color.NRGBA{R: px[Red], G: px[Green], B: px[Blue], A: 0xff})
		}
	}
	return dst
}

// decodeImage reads the source image. Files carrying the .bin extension
// are read in the raw pixel format, everything else through image.Decode.
func decodeImage(r io.Reader) (*Image, error) {
	if f, ok := r.(*os.File); ok && isRawFormat(f.Name()) {
		return ReadBin(f)
	}
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode the source image")
	}
	return FromImage(src)
}

// encodeImage writes img to w. The output format is derived from the file
// extension when w is a file, otherwise JPEG is used. Files without a known
// extension are rejected.
func encodeImage(w io.Writer, img image.Image) error {
	switch w := w.(type) {
	case *os.File:
		ext := filepath.Ext(w.Name())
		format, err := imaging.FormatFromExtension(ext)
		if err != nil {
			return errors.Wrapf(ErrUnsupportedFormat, "%q", ext)
		}
		return imaging.Encode(w, img, format, imaging.JPEGQuality(100))
	default:
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(100))
	}
}

func isRawFormat(name string) bool {
	return strings.EqualFold(filepath.Ext(name), binExt)
}
