package seamcarve

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// binExt is the file extension of the raw pixel format.
const binExt = ".bin"

// maxBinSide is the largest side representable in the 16-bit header.
const maxBinSide = 1<<16 - 1

// ReadBin decodes an image stored in the raw pixel format: a big-endian
// uint16 height, a big-endian uint16 width, followed by height*width RGB
// triplets in row-major order.
func ReadBin(r io.Reader) (*Image, error) {
	var hdr struct {
		Height uint16
		Width  uint16
	}
	br := bufio.NewReader(r)
	if err := binary.Read(br, binary.BigEndian, &hdr); err != nil {
		return nil, errors.Wrap(err, "could not read the raw image header")
	}

	img, err := NewImage(int(hdr.Height), int(hdr.Width))
	if err != nil {
		return nil, err
	}
	buf := make([]byte, img.Width()*3)
	for y := 0; y < img.Height(); y++ {
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, errors.Wrapf(err, "could not read row %d of the raw image", y)
		}
		row := img.pix.row(y)
		for x := range row {
			row[x] = rgb{buf[x*3], buf[x*3+1], buf[x*3+2]}
		}
	}
	return img, nil
}

// WriteBin encodes img in the raw pixel format read by ReadBin.
func WriteBin(w io.Writer, img *Image) error {
	if img.Height() > maxBinSide || img.Width() > maxBinSide {
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d does not fit the raw image header", img.Height(), img.Width())
	}
	bw := bufio.NewWriter(w)
	hdr := []uint16{uint16(img.Height()), uint16(img.Width())}
	if err := binary.Write(bw, binary.BigEndian, hdr); err != nil {
		return errors.Wrap(err, "could not write the raw image header")
	}

	buf := make([]byte, img.Width()*3)
	for y := 0; y < img.Height(); y++ {
		for x, px := range img.pix.row(y) {
			copy(buf[x*3:], px[:])
		}
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrapf(err, "could not write row %d of the raw image", y)
		}
	}
	return bw.Flush()
}
