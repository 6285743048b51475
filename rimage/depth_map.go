package rimage

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// Depth is the depth measurement at a pixel. 0 means the depth there is unknown.
type Depth uint16

// MaxDepth is the biggest representable depth.
const MaxDepth = Depth(^uint16(0))

// DepthMap is a 2-D array of depth measurements with flat storage, indexed (x, y).
type DepthMap struct {
	width  int
	height int

	data []Depth
}

// NewEmptyDepthMap returns an unset depth map of the given dimensions.
func NewEmptyDepthMap(width, height int) *DepthMap {
	return &DepthMap{
		width:  width,
		height: height,
		data:   make([]Depth, width*height),
	}
}

func (dm *DepthMap) kxy(x, y int) int {
	return (y * dm.width) + x
}

// Width returns the horizontal width of the depth map.
func (dm *DepthMap) Width() int {
	return dm.width
}

// Height returns the vertical height of the depth map.
func (dm *DepthMap) Height() int {
	return dm.height
}

// Cols returns the number of columns.
func (dm *DepthMap) Cols() int {
	return dm.width
}

// Rows returns the number of rows.
func (dm *DepthMap) Rows() int {
	return dm.height
}

// In returns whether the given coordinate lies within the map.
func (dm *DepthMap) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < dm.width && y < dm.height
}

// Get returns the depth at the given point.
func (dm *DepthMap) Get(p image.Point) Depth {
	return dm.data[dm.kxy(p.X, p.Y)]
}

// GetDepth returns the depth at the given coordinates.
func (dm *DepthMap) GetDepth(x, y int) Depth {
	return dm.data[dm.kxy(x, y)]
}

// Set sets the depth at the given coordinates.
func (dm *DepthMap) Set(x, y int, val Depth) {
	dm.data[dm.kxy(x, y)] = val
}

// Clone returns an independent copy of the depth map.
func (dm *DepthMap) Clone() *DepthMap {
	out := NewEmptyDepthMap(dm.width, dm.height)
	copy(out.data, dm.data)
	return out
}

// MinMax returns the smallest and largest non-zero depths in the map.
func (dm *DepthMap) MinMax() (Depth, Depth) {
	min, max := MaxDepth, Depth(0)
	for _, z := range dm.data {
		if z == 0 {
			continue
		}
		if z < min {
			min = z
		}
		if z > max {
			max = z
		}
	}
	if max == 0 {
		return 0, 0
	}
	return min, max
}

// ToGray16 converts the depth map into a 16-bit grayscale image.
func (dm *DepthMap) ToGray16() *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, dm.width, dm.height))
	for y := 0; y < dm.height; y++ {
		for x := 0; x < dm.width; x++ {
			img.SetGray16(x, y, color.Gray16{Y: uint16(dm.GetDepth(x, y))})
		}
	}
	return img
}

// ConvertImageToDepthMap takes a grayscale image and interprets it as a depth map.
// 16-bit images are taken as-is, 8-bit images are scaled up to fill the 16-bit range.
func ConvertImageToDepthMap(img image.Image) (*DepthMap, error) {
	switch ii := img.(type) {
	case *image.Gray16:
		return gray16ToDepthMap(ii), nil
	case *image.Gray:
		dm := NewEmptyDepthMap(ii.Bounds().Dx(), ii.Bounds().Dy())
		for y := 0; y < dm.height; y++ {
			for x := 0; x < dm.width; x++ {
				val := ii.GrayAt(ii.Bounds().Min.X+x, ii.Bounds().Min.Y+y).Y
				dm.Set(x, y, Depth(val)<<8)
			}
		}
		return dm, nil
	default:
		return nil, errors.Errorf("don't know how to make DepthMap from %T", img)
	}
}

func gray16ToDepthMap(img *image.Gray16) *DepthMap {
	dm := NewEmptyDepthMap(img.Bounds().Dx(), img.Bounds().Dy())
	for y := 0; y < dm.height; y++ {
		for x := 0; x < dm.width; x++ {
			dm.Set(x, y, Depth(img.Gray16At(img.Bounds().Min.X+x, img.Bounds().Min.Y+y).Y))
		}
	}
	return dm
}

// ToPrettyPicture maps the depth range onto a hue ramp for visualization.
// Unknown pixels stay black. hardMin and hardMax bound the displayed range;
// pass 0 and MaxDepth to use the full data range.
func (dm *DepthMap) ToPrettyPicture(hardMin, hardMax Depth) image.Image {
	min, max := dm.MinMax()

	if min < hardMin {
		min = hardMin
	}
	if max > hardMax {
		max = hardMax
	}

	img := image.NewRGBA(image.Rect(0, 0, dm.width, dm.height))

	span := float64(max) - float64(min)
	if span <= 0 {
		span = 1
	}

	for y := 0; y < dm.height; y++ {
		for x := 0; x < dm.width; x++ {
			z := dm.GetDepth(x, y)
			if z == 0 {
				continue
			}

			if z < min {
				z = min
			}
			if z > max {
				z = max
			}

			ratio := float64(z-min) / span

			hue := 30 + (200.0 * ratio)
			img.Set(x, y, NewColorFromHSV(hue, 1.0, 1.0))
		}
	}

	return img
}
