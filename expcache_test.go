package gdfmm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpCache(t *testing.T) {
	c := newExpCache(2.5, 10)

	// zero displacement and zero color difference both weigh 1
	assert.Equal(t, 1.0, c.at(0))

	assert.Equal(t, c.at(3), c.at(-3))
	assert.InDelta(t, math.Exp(-9.0/(2*2.5*2.5)), c.at(3), 1e-12)

	// strictly decreasing away from zero
	for k := 1; k <= 10; k++ {
		assert.Less(t, c.at(k), c.at(k-1))
	}
}

func TestExpCacheColorDomain(t *testing.T) {
	c := newExpCache(20, 255)
	assert.Equal(t, 1.0, c.at(0))
	assert.InDelta(t, math.Exp(-255.0*255.0/(2*20*20)), c.at(255), 1e-40)
	assert.Equal(t, c.at(255), c.at(-255))
}
