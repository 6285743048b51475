package rimage

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// NewColor returns a color from its components.
func NewColor(r, g, b uint8) Color {
	return Color{r, g, b}
}

// NewColorFromColor takes in a go Color and converts it.
func NewColorFromColor(c color.Color) Color {
	switch cc := c.(type) {
	case Color:
		return cc
	case color.NRGBA:
		return NewColor(cc.R, cc.G, cc.B)
	case color.RGBA:
		if cc.A == 255 {
			return NewColor(cc.R, cc.G, cc.B)
		}
	}
	r, g, b, _ := c.RGBA()
	return NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// NewColorFromHSV returns a color from hue [0, 360], saturation and value [0, 1].
func NewColorFromHSV(h, s, v float64) Color {
	return NewColorFromColorful(colorful.Hsv(h, s, v))
}

// NewColorFromColorful converts from the go-colorful package.
func NewColorFromColorful(c colorful.Color) Color {
	r, g, b := c.RGB255()
	return NewColor(r, g, b)
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBA makes Color implement color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return uint32(c.R) * 0x101, uint32(c.G) * 0x101, uint32(c.B) * 0x101, 0xffff
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// DistanceLab returns the perceptual distance between two colors in Lab space.
// 0 is the same color, >= 1 is very different.
func (c Color) DistanceLab(b Color) float64 {
	return c.toColorful().DistanceLab(b.toColorful())
}

// AverageColor returns the numerical average of the given colors.
func AverageColor(colors []Color) Color {
	if len(colors) == 0 {
		return Color{}
	}
	r, g, b := 0, 0, 0
	for _, c := range colors {
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
	}
	n := len(colors)
	return NewColor(uint8(r/n), uint8(g/n), uint8(b/n))
}
