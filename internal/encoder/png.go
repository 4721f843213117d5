package encoder

import (
	"bytes"
	"image"
	"image/png"
)

// PNGEncoder encodes canvases to PNG using Go's standard library.
// PNG is the primary output format: lossless, alpha-capable, and
// byte-deterministic for a given canvas.
type PNGEncoder struct{}

func (e *PNGEncoder) Format() string    { return "png" }
func (e *PNGEncoder) Extension() string { return "png" }
func (e *PNGEncoder) Available() bool   { return true }

func (e *PNGEncoder) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(8 * 1024) // icons are small

	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	err := enc.Encode(&buf, img)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
