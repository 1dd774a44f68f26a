package seamcarve

import "github.com/pkg/errors"

// Errors returned by the carving pipeline. All of them are caller errors:
// the computation itself is deterministic and never needs to be retried.
var (
	// ErrInvalidDimensions is returned when an image or table has a side smaller than one pixel,
	// or when the requested dimensions do not match the data.
	ErrInvalidDimensions = errors.New("invalid image dimensions")

	// ErrMinimumWidth is returned when a seam removal would leave a zero-width image.
	ErrMinimumWidth = errors.New("image width cannot be reduced below one pixel")

	// ErrSeamLength is returned when the seam does not carry exactly one column per row.
	ErrSeamLength = errors.New("seam length does not match image height")

	// ErrSeamOutOfRange is returned when a seam column lies outside of the image.
	ErrSeamOutOfRange = errors.New("seam column out of range")

	// ErrSeamDisconnected is returned when two consecutive seam columns are more than one column apart.
	ErrSeamDisconnected = errors.New("seam is not connected")

	// ErrUnsupportedFormat is returned for output files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)
