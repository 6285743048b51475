package gdfmm

import (
	"github.com/FYP-DES5/gdfmm/rimage"
	"github.com/FYP-DES5/gdfmm/utils"
)

// depthGradient estimates (∂d/∂x, ∂d/∂y) at a pixel by averaging the forward
// and backward one-sided differences, using only differences whose operands
// are both known. A Sobel won't do here: the window may contain unknowns.
func depthGradient(d *depthField, x, y int) (float64, float64) {
	var dx, dy float64
	var wx, wy int

	if x > 0 && d.at(x, y) != 0 && d.at(x-1, y) != 0 {
		dx += d.at(x, y) - d.at(x-1, y)
		wx++
	}
	if x+1 < d.width && d.at(x+1, y) != 0 && d.at(x, y) != 0 {
		dx += d.at(x+1, y) - d.at(x, y)
		wx++
	}

	if y > 0 && d.at(x, y) != 0 && d.at(x, y-1) != 0 {
		dy += d.at(x, y) - d.at(x, y-1)
		wy++
	}
	if y+1 < d.height && d.at(x, y+1) != 0 && d.at(x, y) != 0 {
		dy += d.at(x, y+1) - d.at(x, y)
		wy++
	}

	if wx > 0 {
		dx /= float64(wx)
	}
	if wy > 0 {
		dy /= float64(wy)
	}
	return dx, dy
}

// bilateralWeight is the product of the spatial and per-channel color kernels
// between the target pixel and a window pixel.
func (f *Filler) bilateralWeight(img *rimage.Image, x1, y1, x2, y2 int) float64 {
	c1 := img.GetXY(x1, y1)
	c2 := img.GetXY(x2, y2)
	return f.distCache.at(x2-x1) *
		f.distCache.at(y2-y1) *
		f.colorCache.at(int(c1.R)-int(c2.R)) *
		f.colorCache.at(int(c1.G)-int(c2.G)) *
		f.colorCache.at(int(c1.B)-int(c2.B))
}

// predictBilateral predicts the unknown depth at (x, y) as the bilateral-
// weighted mean of the known depths in the surrounding window. It returns 0
// when fewer than 4 known pixels are in the window, which the engine treats
// as "retry later".
func (f *Filler) predictBilateral(d *depthField, img *rimage.Image, x, y int) (float64, error) {
	var sumWeights, sumValues float64
	count := 0
	radius := f.windowSize / 2

	for n := utils.MaxInt(0, y-radius); n <= utils.MinInt(d.height-1, y+radius); n++ {
		for m := utils.MaxInt(0, x-radius); m <= utils.MinInt(d.width-1, x+radius); m++ {
			depth := d.at(m, n)
			if depth == 0 { // invalid
				continue
			}

			// The floor keeps a highly textured window from underweighting
			// every candidate at once.
			weight := f.bilateralWeight(img, x, y, m, n)
			if weight < 1e-6 {
				weight = 1e-6
			}

			sumValues += weight * depth
			sumWeights += weight
			count++
		}
	}

	if count <= 3 {
		return 0, nil
	}
	return sumValues / sumWeights, nil
}
