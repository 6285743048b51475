package rimage

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepthMapBasics(t *testing.T) {
	dm := NewEmptyDepthMap(4, 3)
	assert.Equal(t, 4, dm.Width())
	assert.Equal(t, 3, dm.Height())
	assert.Equal(t, 4, dm.Cols())
	assert.Equal(t, 3, dm.Rows())

	assert.True(t, dm.In(0, 0))
	assert.True(t, dm.In(3, 2))
	assert.False(t, dm.In(4, 0))
	assert.False(t, dm.In(0, 3))
	assert.False(t, dm.In(-1, 0))

	dm.Set(1, 2, 750)
	assert.Equal(t, Depth(750), dm.GetDepth(1, 2))
	assert.Equal(t, Depth(750), dm.Get(image.Point{1, 2}))
	assert.Equal(t, Depth(0), dm.GetDepth(0, 0))
}

func TestDepthMapMinMax(t *testing.T) {
	dm := NewEmptyDepthMap(3, 3)
	min, max := dm.MinMax()
	assert.Equal(t, Depth(0), min)
	assert.Equal(t, Depth(0), max)

	dm.Set(0, 0, 100)
	dm.Set(2, 2, 4000)
	dm.Set(1, 1, 250)
	min, max = dm.MinMax()
	assert.Equal(t, Depth(100), min)
	assert.Equal(t, Depth(4000), max)
}

func TestDepthMapClone(t *testing.T) {
	dm := NewEmptyDepthMap(2, 2)
	dm.Set(0, 1, 42)
	clone := dm.Clone()
	clone.Set(0, 1, 43)
	assert.Equal(t, Depth(42), dm.GetDepth(0, 1))
	assert.Equal(t, Depth(43), clone.GetDepth(0, 1))
}

func TestDepthMapGray16RoundTrip(t *testing.T) {
	dm := NewEmptyDepthMap(3, 2)
	dm.Set(0, 0, 1)
	dm.Set(1, 0, 30000)
	dm.Set(2, 1, MaxDepth)

	back, err := ConvertImageToDepthMap(dm.ToGray16())
	require.NoError(t, err)
	assert.Equal(t, dm, back)
}

func TestDepthMapFileRoundTrip(t *testing.T) {
	dm := NewEmptyDepthMap(4, 4)
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			dm.Set(x, y, Depth(100*(x+1)+y))
		}
	}

	fn := filepath.Join(t.TempDir(), "depth.png")
	require.NoError(t, dm.WriteToFile(fn))

	back, err := ReadDepthMapFromFile(fn)
	require.NoError(t, err)
	assert.Equal(t, dm, back)
}

func TestConvertImageToDepthMapErrors(t *testing.T) {
	_, err := ConvertImageToDepthMap(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	assert.Error(t, err)
}

func TestToPrettyPicture(t *testing.T) {
	dm := NewEmptyDepthMap(3, 3)
	dm.Set(0, 0, 100)
	dm.Set(2, 2, 5000)

	img := dm.ToPrettyPicture(0, MaxDepth)
	assert.Equal(t, image.Rect(0, 0, 3, 3), img.Bounds())

	// unknown pixels stay black
	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0), r+g+b)

	// known pixels do not
	r, g, b, _ = img.At(0, 0).RGBA()
	assert.NotEqual(t, uint32(0), r+g+b)

	// a uniform map must not blow up on a zero span
	uniform := NewEmptyDepthMap(2, 2)
	uniform.Set(0, 0, 77)
	uniform.Set(1, 1, 77)
	img = uniform.ToPrettyPicture(0, MaxDepth)
	r, g, b, _ = img.At(0, 0).RGBA()
	assert.NotEqual(t, uint32(0), r+g+b)
}
