package icons

import (
	"image"

	"github.com/disintegration/imaging"
)

// toNRGBA returns img in 4-channel NRGBA form. Images that already carry an
// alpha channel are passed through untouched.
func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba
	}
	return imaging.Clone(img)
}
