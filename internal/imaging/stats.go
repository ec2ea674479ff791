package imaging

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// LuminanceStats summarizes the perceptual brightness of an image.
//
// Values are CIE Lab L* on a 0-100 scale, where 0 is black and 100 is
// white. Mean, Min, and Max together describe the dynamic range available
// to the recognizer; a narrow range suggests a washed-out scan.
type LuminanceStats struct {
	Mean float64 `json:"mean"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Luminance computes perceptual luminance statistics over a sampled grid of
// pixels. Large images are sampled at roughly 100 points per axis rather
// than exhaustively; fully transparent pixels are skipped.
func Luminance(img image.Image) LuminanceStats {
	bounds := img.Bounds()
	stepX := max(1, bounds.Dx()/100)
	stepY := max(1, bounds.Dy()/100)

	var (
		sum   float64
		count int
		lmin  = 101.0
		lmax  = -1.0
	)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			col, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			l, _, _ := col.Lab()
			l *= 100
			sum += l
			count++
			if l < lmin {
				lmin = l
			}
			if l > lmax {
				lmax = l
			}
		}
	}

	if count == 0 {
		return LuminanceStats{}
	}
	return LuminanceStats{
		Mean: sum / float64(count),
		Min:  lmin,
		Max:  lmax,
	}
}
