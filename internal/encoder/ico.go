package encoder

import (
	"bytes"
	"image"

	ico "github.com/sergeymakinen/go-ico"
)

// ICOEncoder wraps each canvas in a single-image Windows ICO container,
// the format favicons and installers still expect.
type ICOEncoder struct{}

func (e *ICOEncoder) Format() string    { return "ico" }
func (e *ICOEncoder) Extension() string { return "ico" }
func (e *ICOEncoder) Available() bool   { return true }

func (e *ICOEncoder) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
