// Package rimage defines fundamental image types for depth and color data,
// and operations on them.
package rimage

import (
	"image"
	"image/color"
)

// Image is an RGB image with flat storage, indexed (x, y).
type Image struct {
	data          []Color
	width, height int
}

// NewImage returns a blank image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		data:   make([]Color, width*height),
		width:  width,
		height: height,
	}
}

// ConvertImage converts a go image into our Image type, copying the pixel data.
func ConvertImage(img image.Image) *Image {
	if ii, ok := img.(*Image); ok {
		return ii
	}
	bounds := img.Bounds()
	out := NewImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			out.SetXY(x, y, NewColorFromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return out
}

func (i *Image) kxy(x, y int) int {
	return (y * i.width) + x
}

// Width returns the horizontal width of the image.
func (i *Image) Width() int {
	return i.width
}

// Height returns the vertical height of the image.
func (i *Image) Height() int {
	return i.height
}

// In returns whether the given coordinate lies within the image.
func (i *Image) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < i.width && y < i.height
}

// Bounds returns the rectangle of the image.
func (i *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.width, i.height)
}

// ColorModel makes Image implement image.Image.
func (i *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// At returns the color at the given point as a color.Color.
func (i *Image) At(x, y int) color.Color {
	return i.data[i.kxy(x, y)]
}

// Get returns the color at the given point.
func (i *Image) Get(p image.Point) Color {
	return i.data[i.kxy(p.X, p.Y)]
}

// GetXY returns the color at the given coordinates.
func (i *Image) GetXY(x, y int) Color {
	return i.data[i.kxy(x, y)]
}

// SetXY sets the color at the given coordinates.
func (i *Image) SetXY(x, y int, c Color) {
	i.data[i.kxy(x, y)] = c
}

// Set sets the color at the given point.
func (i *Image) Set(p image.Point, c Color) {
	i.data[i.kxy(p.X, p.Y)] = c
}
