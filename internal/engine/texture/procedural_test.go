package texture

import (
	"bytes"
	"image/color"
	"testing"
)

func TestCheckerboard(t *testing.T) {
	light := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	dark := color.RGBA{R: 40, G: 40, B: 40, A: 255}

	img := Checkerboard(64, 8, light, dark)

	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Fatalf("expected 64x64 image, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// Cell size is 8: (0,0) light, (8,0) dark, (8,8) light
	if got := img.RGBAAt(0, 0); got != light {
		t.Errorf("expected light at (0,0), got %v", got)
	}
	if got := img.RGBAAt(8, 0); got != dark {
		t.Errorf("expected dark at (8,0), got %v", got)
	}
	if got := img.RGBAAt(8, 8); got != light {
		t.Errorf("expected light at (8,8), got %v", got)
	}
}

func TestNoiseShadeDeterministic(t *testing.T) {
	a := Grass(32, 7)
	b := Grass(32, 7)

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("expected identical pixels for the same seed")
	}

	c := Grass(32, 8)
	if bytes.Equal(a.Pix, c.Pix) {
		t.Error("expected different pixels for a different seed")
	}
}

func TestTilesOpaque(t *testing.T) {
	tiles := map[string]interface {
		RGBAAt(x, y int) color.RGBA
	}{
		"grass": Grass(16, 1),
		"rock":  Rock(16, 2),
		"snow":  Snow(16, 3),
	}

	for name, img := range tiles {
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				if img.RGBAAt(x, y).A != 255 {
					t.Errorf("%s: expected opaque pixel at (%d,%d)", name, x, y)
				}
			}
		}
	}
}

func TestShadeClamps(t *testing.T) {
	if got := shade(200, 2.0); got != 255 {
		t.Errorf("expected 255, got %d", got)
	}
	if got := shade(200, -1.0); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if got := shade(100, 1.0); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
}
