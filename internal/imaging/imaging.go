package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
)

// ErrProcess is the unified image-processing failure kind. Every decode or
// conversion problem wraps it, so handlers can map the whole family to a
// client error.
var ErrProcess = errors.New("error processing image")

// Normalize decodes raw image bytes and produces the model input tensor data:
// shape [1, height, width, 3], RGB channel values scaled to [0, 1], pixels in
// row-major HWC order. Non-RGB inputs (grayscale, RGBA) are converted to RGB,
// which drops alpha and grayscale distinctions.
func Normalize(data []byte, width, height int) ([]float32, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrProcess)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcess, err)
	}

	// Lanczos3 is kept fixed so repeated uploads of the same image produce
	// identical confidence scores.
	resized := resize.Resize(uint(width), uint(height), img, resize.Lanczos3)

	bounds := resized.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w != width || h != height {
		return nil, fmt.Errorf("%w: resize produced %dx%d, want %dx%d", ErrProcess, w, h, width, height)
	}

	out := make([]float32, h*w*3)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			out[i] = float32(r) / 65535.0
			out[i+1] = float32(g) / 65535.0
			out[i+2] = float32(b) / 65535.0
			i += 3
		}
	}

	return out, nil
}
