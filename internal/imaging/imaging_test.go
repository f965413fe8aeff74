package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestNormalizeShapesAndRange(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
	}{
		{
			name: "rgba",
			img: func() image.Image {
				m := image.NewRGBA(image.Rect(0, 0, 40, 30))
				for y := 0; y < 30; y++ {
					for x := 0; x < 40; x++ {
						m.Set(x, y, color.RGBA{R: uint8(x * 6), G: uint8(y * 8), B: 120, A: 200})
					}
				}
				return m
			}(),
		},
		{
			name: "grayscale",
			img: func() image.Image {
				m := image.NewGray(image.Rect(0, 0, 64, 64))
				for y := 0; y < 64; y++ {
					for x := 0; x < 64; x++ {
						m.SetGray(x, y, color.Gray{Y: uint8((x + y) % 256)})
					}
				}
				return m
			}(),
		},
		{
			name: "nrgba small",
			img:  image.NewNRGBA(image.Rect(0, 0, 3, 3)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Normalize(encodePNG(t, tt.img), 128, 128)
			if err != nil {
				t.Fatalf("Normalize() error: %v", err)
			}
			if len(out) != 128*128*3 {
				t.Fatalf("len = %d, want %d", len(out), 128*128*3)
			}
			for i, v := range out {
				if v < 0 || v > 1 {
					t.Fatalf("value[%d] = %f outside [0,1]", i, v)
				}
			}
		})
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 50, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			m.Set(x, y, color.RGBA{R: uint8(x * 5), G: uint8(y * 5), B: uint8(x + y), A: 255})
		}
	}
	data := encodePNG(t, m)

	a, err := Normalize(data, 128, 128)
	if err != nil {
		t.Fatalf("first Normalize() error: %v", err)
	}
	b, err := Normalize(data, 128, 128)
	if err != nil {
		t.Fatalf("second Normalize() error: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic output at %d: %f != %f", i, a[i], b[i])
		}
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	_, err := Normalize(nil, 128, 128)
	if !errors.Is(err, ErrProcess) {
		t.Fatalf("error = %v, want ErrProcess", err)
	}
}

func TestNormalizeCorruptInput(t *testing.T) {
	_, err := Normalize([]byte("definitely not an image"), 128, 128)
	if !errors.Is(err, ErrProcess) {
		t.Fatalf("error = %v, want ErrProcess", err)
	}
}
