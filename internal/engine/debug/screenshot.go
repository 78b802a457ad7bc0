package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// SaveScreenshot writes a framebuffer capture to dir as a timestamped PNG
// and returns the path it wrote. pixels must hold width*height RGBA bytes in
// glReadPixels order, bottom row first.
func SaveScreenshot(dir, prefix string, pixels []byte, width, height int) (string, error) {
	img, err := framebufferImage(pixels, width, height)
	if err != nil {
		return "", err
	}

	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating screenshot dir: %w", err)
		}
	}
	name := fmt.Sprintf("%s_%s.png", prefix, time.Now().Format("2006-01-02_15-04-05"))
	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating screenshot: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding screenshot: %w", err)
	}
	return path, nil
}

// framebufferImage flips a bottom-up RGBA pixel buffer into an image with
// the usual top-down row order.
func framebufferImage(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("framebuffer capture is %d bytes, want %d for %dx%d",
			len(pixels), width*height*4, width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pixels[src:src+row])
	}
	return img, nil
}
