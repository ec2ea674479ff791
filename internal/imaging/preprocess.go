package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/histogram"
	"github.com/disintegration/imaging"
)

const (
	// contrastBoost is the percentage passed to imaging.AdjustContrast,
	// widening the tonal separation between text and background.
	contrastBoost = 50.0

	// blurRadius is the Gaussian blur radius in pixels used to suppress
	// speckle noise before recognition.
	blurRadius = 1.0
)

// Preprocess prepares a decoded image for text recognition.
//
// The chain mirrors common scan cleanup: single-channel grayscale, a fixed
// contrast boost, a small-radius Gaussian blur to suppress speckle noise,
// and an autocontrast pass to normalize the dynamic range. The input image
// is never modified.
func Preprocess(img image.Image) image.Image {
	gray := imaging.Grayscale(img)
	boosted := imaging.AdjustContrast(gray, contrastBoost)
	blurred := blur.Gaussian(boosted, blurRadius)
	return autoContrast(blurred)
}

// autoContrast linearly stretches the tonal range so the darkest occupied
// histogram bin maps to 0 and the lightest to 255. Expects a grayscale
// image; only the red channel histogram is inspected.
func autoContrast(img image.Image) image.Image {
	hist := histogram.NewRGBAHistogram(img)

	lo, hi := -1, -1
	for i, n := range hist.R.Bins {
		if n == 0 {
			continue
		}
		if lo < 0 {
			lo = i
		}
		hi = i
	}
	if lo < 0 || hi <= lo {
		// Empty or single-tone image, nothing to stretch.
		return img
	}

	scale := 255.0 / float64(hi-lo)
	bounds := img.Bounds()
	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			v := (float64(r>>8) - float64(lo)) * scale
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			out.SetGray(x, y, color.Gray{Y: uint8(v + 0.5)})
		}
	}
	return out
}
