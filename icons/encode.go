package icons

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// SavePNG writes img as a lossless PNG with best compression
func SavePNG(img image.Image, path string) error {
	return imaging.Save(img, path, imaging.PNGCompressionLevel(png.BestCompression))
}

// SaveWebP writes img as a lossy WebP at the given quality (0-100)
func SaveWebP(img image.Image, path string, quality float32) error {
	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, quality)
	if err != nil {
		return fmt.Errorf("failed to create webp encoder options: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create webp file: %w", err)
	}
	defer f.Close()

	if err := webp.Encode(f, img, options); err != nil {
		return fmt.Errorf("failed to encode webp: %w", err)
	}

	return nil
}
