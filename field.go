package gdfmm

import (
	"math"

	"github.com/FYP-DES5/gdfmm/rimage"
	"github.com/FYP-DES5/gdfmm/utils"
)

// depthField is the float working copy of a depth map that the propagation
// engine fills in place. Depths stay in the caller's units; 0 still means
// unknown.
type depthField struct {
	width, height int
	data          []float64
}

func newDepthField(dm *rimage.DepthMap) *depthField {
	f := &depthField{
		width:  dm.Width(),
		height: dm.Height(),
		data:   make([]float64, dm.Width()*dm.Height()),
	}
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			f.data[(y*f.width)+x] = float64(dm.GetDepth(x, y))
		}
	}
	return f
}

func (f *depthField) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.width && y < f.height
}

func (f *depthField) at(x, y int) float64 {
	return f.data[(y*f.width)+x]
}

func (f *depthField) set(x, y int, v float64) {
	f.data[(y*f.width)+x] = v
}

// toDepthMap saturates back into 16-bit depths.
func (f *depthField) toDepthMap() *rimage.DepthMap {
	dm := rimage.NewEmptyDepthMap(f.width, f.height)
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			v := math.Round(utils.ClampF64(f.at(x, y), 0, float64(rimage.MaxDepth)))
			dm.Set(x, y, rimage.Depth(v))
		}
	}
	return dm
}
