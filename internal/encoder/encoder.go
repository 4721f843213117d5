package encoder

import (
	"image"
)

// Encoder encodes a rendered canvas to a specific output format.
type Encoder interface {
	// Format returns the output format name (e.g. "png", "bmp", "ico").
	Format() string

	// Encode converts the image to bytes.
	Encode(img image.Image) ([]byte, error)

	// Available returns true if the encoder is ready to use.
	Available() bool

	// Extension returns the file extension without dot.
	Extension() string
}
