package seamcarve

import (
	"bytes"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"os"
	"path/filepath"
	"testing"

	"github.com/esimov/seamcarve/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImage_NewImageRejectsDegenerateDimensions(t *testing.T) {
	for _, dim := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {0, 0}} {
		img, err := NewImage(dim[0], dim[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions)
		assert.Nil(t, img)
	}
}

func TestImage_Accessors(t *testing.T) {
	img, err := NewImage(2, 3)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())

	img.Set(1, 2, 10, 20, 30)
	assert.Equal(t, uint8(10), img.Channel(1, 2, Red))
	assert.Equal(t, uint8(20), img.Channel(1, 2, Green))
	assert.Equal(t, uint8(30), img.Channel(1, 2, Blue))

	assert.Panics(t, func() { img.Channel(2, 0, Red) })
	assert.Panics(t, func() { img.Set(0, 3, 0, 0, 0) })
	assert.Panics(t, func() { img.RGB(-1, 0) })
}

func TestImage_CloneIsIndependent(t *testing.T) {
	img := uniformImage(t, 2, 2, gray)
	dup := img.Clone()
	dup.Set(0, 0, 1, 2, 3)

	r, g, b := img.RGB(0, 0)
	assert.Equal(t, []uint8{100, 100, 100}, []uint8{r, g, b})
}

func TestImage_FromImage(t *testing.T) {
	rect := image.Rect(-1, -1, 15, 15)
	colors := palette.Plan9
	testCases := []struct {
		name string
		img  image.Image
	}{
		{
			name: "NRGBA",
			img:  makeNRGBAImage(rect, colors),
		},
		{
			name: "YCbCr-444",
			img:  makeYCbCrImage(rect, colors, image.YCbCrSubsampleRatio444),
		},
		{
			name: "YCbCr-420",
			img:  makeYCbCrImage(rect, colors, image.YCbCrSubsampleRatio420),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			img, err := FromImage(tc.img)
			require.NoError(t, err)

			r := tc.img.Bounds()
			require.Equal(t, r.Dy(), img.Height())
			require.Equal(t, r.Dx(), img.Width())

			for y := r.Min.Y; y < r.Max.Y; y++ {
				for x := r.Min.X; x < r.Max.X; x++ {
					want := color.NRGBAModel.Convert(tc.img.At(x, y)).(color.NRGBA)
					gr, gg, gb := img.RGB(y-r.Min.Y, x-r.Min.X)
					if !compareBytes([]uint8{gr, gg, gb}, []uint8{want.R, want.G, want.B}, 1) {
						t.Fatalf("pixel (%d, %d): got %v want %v", x, y, []uint8{gr, gg, gb}, want)
					}
				}
			}
		})
	}
}

func TestImage_NRGBAIsOpaque(t *testing.T) {
	img := columnsImage(t, 2, white, black, gray)
	dst := img.NRGBA()

	assert.Equal(t, img.Bounds(), dst.Bounds())
	assert.Equal(t, color.NRGBA{R: 100, G: 100, B: 100, A: 0xff}, dst.NRGBAAt(2, 1))
	assert.Equal(t, color.NRGBA{A: 0xff}, dst.NRGBAAt(1, 0))
}

func TestImage_EncodeToWriterDefaultsToJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, encodeImage(&buf, uniformImage(t, 4, 4, gray).NRGBA()))

	_, format, err := image.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestImage_EncodeToFileNeedsKnownExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out", "out.xyz"} {
		f, err := os.Create(filepath.Join(dir, name))
		require.NoError(t, err)
		err = encodeImage(f, uniformImage(t, 4, 4, gray).NRGBA())
		assert.ErrorIs(t, err, ErrUnsupportedFormat, name)
		require.NoError(t, f.Close())
	}
}

func makeYCbCrImage(rect image.Rectangle, colors []color.Color, sr image.YCbCrSubsampleRatio) *image.YCbCr {
	img := image.NewYCbCr(rect, sr)
	j := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			iy := img.YOffset(x, y)
			ic := img.COffset(x, y)
			c := color.NRGBAModel.Convert(colors[j]).(color.NRGBA)
			img.Y[iy], img.Cb[ic], img.Cr[ic] = color.RGBToYCbCr(c.R, c.G, c.B)
			j++
		}
	}
	return img
}

func makeNRGBAImage(rect image.Rectangle, colors []color.Color) *image.NRGBA {
	img := image.NewNRGBA(rect)
	fillDrawImage(img, colors)
	return img
}

func fillDrawImage(img draw.Image, colors []color.Color) {
	colorsNRGBA := make([]color.NRGBA, len(colors))
	for i, c := range colors {
		nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
		nrgba.A = uint8(i % 256)
		colorsNRGBA[i] = nrgba
	}
	rect := img.Bounds()
	i := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.Set(x, y, colorsNRGBA[i])
			i++
		}
	}
}

func compareBytes(a, b []uint8, delta int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if utils.Abs(int(a[i])-int(b[i])) > delta {
			return false
		}
	}
	return true
}
