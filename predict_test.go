package gdfmm

import (
	"testing"

	"github.com/edaniels/golog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FYP-DES5/gdfmm/rimage"
)

func testFiller(t *testing.T, sigmaDistance, sigmaColor, blurSigma float64, windowSize int) *Filler {
	t.Helper()
	f, err := NewFiller(sigmaDistance, sigmaColor, blurSigma, windowSize, golog.NewTestLogger(t))
	require.NoError(t, err)
	return f
}

func fieldFromValues(w, h int, vals []float64) *depthField {
	return &depthField{width: w, height: h, data: vals}
}

func TestDepthGradient(t *testing.T) {
	d := fieldFromValues(3, 3, []float64{
		0, 10, 0,
		10, 20, 40,
		0, 30, 0,
	})

	// both sides known: average of forward and backward differences
	gx, gy := depthGradient(d, 1, 1)
	assert.Equal(t, ((20.0-10.0)+(40.0-20.0))/2, gx)
	assert.Equal(t, ((20.0-10.0)+(30.0-20.0))/2, gy)

	// one side unknown: only the usable difference counts
	gx, gy = depthGradient(d, 1, 0)
	assert.Equal(t, 0.0, gx) // horizontal neighbors are unknown
	assert.Equal(t, 20.0-10.0, gy)

	// unknown center: nothing usable
	gx, gy = depthGradient(d, 0, 0)
	assert.Equal(t, 0.0, gx)
	assert.Equal(t, 0.0, gy)
}

func TestPredictBilateralUniform(t *testing.T) {
	f := testFiller(t, 2.5, 20, 0, 3)
	img := uniformImage(3, 3, rimage.NewColor(128, 128, 128))
	d := fieldFromValues(3, 3, []float64{
		100, 100, 100,
		100, 0, 100,
		100, 100, 100,
	})

	v, err := f.predictBilateral(d, img, 1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, v, 1e-9)
}

func TestPredictBilateralTooFewSamples(t *testing.T) {
	f := testFiller(t, 2.5, 20, 0, 3)
	img := uniformImage(3, 3, rimage.NewColor(128, 128, 128))
	d := fieldFromValues(3, 3, []float64{
		100, 0, 0,
		100, 0, 0,
		100, 0, 0,
	})

	// the window around (1,1) sees exactly 3 known pixels; not enough
	v, err := f.predictBilateral(d, img, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	// one more known pixel and the prediction commits
	d.set(1, 0, 100)
	v, err = f.predictBilateral(d, img, 1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, v, 1e-9)
}

func TestPredictBilateralFollowsColor(t *testing.T) {
	// a tight color sigma makes same-colored neighbors dominate the weight
	f := testFiller(t, 2.5, 10, 0, 5)
	img := halfAndHalfImage(5, 5, 2)
	d := newDepthField(rimage.NewEmptyDepthMap(5, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			switch {
			case x < 2:
				d.set(x, y, 50)
			case x > 2:
				d.set(x, y, 200)
			}
		}
	}

	// (2,2) is white like the right half, so its prediction leans there
	v, err := f.predictBilateral(d, img, 2, 2)
	require.NoError(t, err)
	assert.Greater(t, v, 190.0)
	assert.LessOrEqual(t, v, 200.0)
}

func TestPredictBilateralWeightIdentity(t *testing.T) {
	f := testFiller(t, 2.5, 20, 0, 3)
	img := uniformImage(3, 3, rimage.NewColor(1, 2, 3))
	// zero displacement, zero color difference
	assert.Equal(t, 1.0, f.bilateralWeight(img, 1, 1, 1, 1))
	// any displacement strictly lowers the weight
	assert.Less(t, f.bilateralWeight(img, 1, 1, 0, 1), 1.0)
}
