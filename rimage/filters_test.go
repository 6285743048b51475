package rimage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeRangeArray(t *testing.T) {
	assert.Equal(t, []int{}, MakeRangeArray(0))
	assert.Equal(t, []int{0}, MakeRangeArray(1))
	assert.Equal(t, []int{-1, 0, 1}, MakeRangeArray(3))
	assert.Equal(t, []int{-2, -1, 0, 1, 2}, MakeRangeArray(5))
	assert.Equal(t, []int{-2, -1, 0, 1}, MakeRangeArray(4))
}

func TestSobelKernels(t *testing.T) {
	// each kernel sums to zero so flat regions produce no gradient
	sumX, sumY := 0.0, 0.0
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			sumX += SobelX[j][i]
			sumY += SobelY[j][i]
		}
	}
	assert.Equal(t, 0.0, sumX)
	assert.Equal(t, 0.0, sumY)

	// SobelY is SobelX transposed
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			assert.Equal(t, SobelX[j][i], SobelY[i][j])
		}
	}
}
