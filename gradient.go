package gdfmm

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/FYP-DES5/gdfmm/rimage"
	"github.com/FYP-DES5/gdfmm/utils"
)

// gradientField holds, for each pixel and color channel, the squared magnitude
// of the Sobel gradient of the blurred color image. It is computed once per
// fill and steers the marching order: the front crosses strong color edges at
// a different rate than flat regions.
type gradientField struct {
	width, height int
	strength      [3][]float64
}

// computeGradientField blurs the color image with the given sigma (a sigma of
// zero skips the blur) and runs a per-channel 3x3 Sobel over the result.
func computeGradientField(img *rimage.Image, blurSigma float64) *gradientField {
	w, h := img.Width(), img.Height()
	g := &gradientField{width: w, height: h}
	for c := 0; c < 3; c++ {
		g.strength[c] = make([]float64, w*h)
	}

	blurred := imaging.Blur(img, blurSigma)
	channels := func(x, y int) (float64, float64, float64) {
		px := blurred.NRGBAAt(x, y)
		return float64(px.R), float64(px.G), float64(px.B)
	}

	xRange, yRange := rimage.MakeRangeArray(3), rimage.MakeRangeArray(3)
	utils.ParallelForEachPixel(image.Point{w, h}, func(x, y int) {
		var gx, gy [3]float64
		for j, dy := range yRange {
			for i, dx := range xRange {
				// replicate the border pixel, so a flat region stays
				// gradient-free at the image edge
				sx := utils.MinInt(utils.MaxInt(x+dx, 0), w-1)
				sy := utils.MinInt(utils.MaxInt(y+dy, 0), h-1)
				r, gr, b := channels(sx, sy)
				// rows are height j, columns are width i
				kx, ky := rimage.SobelX[j][i], rimage.SobelY[j][i]
				gx[0] += kx * r
				gx[1] += kx * gr
				gx[2] += kx * b
				gy[0] += ky * r
				gy[1] += ky * gr
				gy[2] += ky * b
			}
		}
		k := (y * w) + x
		for c := 0; c < 3; c++ {
			g.strength[c][k] = gx[c]*gx[c] + gy[c]*gy[c]
		}
	})
	return g
}

// speed is the arrival rate of the marching front at a pixel, always in [-1, 0).
func (g *gradientField) speed(x, y int) float64 {
	k := (y * g.width) + x
	return -1.0 / (1 + g.strength[0][k] + g.strength[1][k] + g.strength[2][k])
}
