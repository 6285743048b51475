package gdfmm

import (
	"math"

	"github.com/FYP-DES5/gdfmm/utils"
)

// expCache precomputes exp(-k²/(2σ²)) over the integer domain |k| <= max.
// The bilateral weight evaluates this for every window pixel, so the table
// pays for itself almost immediately.
type expCache struct {
	values []float64
}

func newExpCache(sigma float64, max int) *expCache {
	c := &expCache{values: make([]float64, max+1)}
	twoSigmaSquared := 2 * sigma * sigma
	for k := 0; k <= max; k++ {
		c.values[k] = math.Exp(-float64(k*k) / twoSigmaSquared)
	}
	return c
}

// at returns exp(-k²/(2σ²)). k must satisfy |k| <= max from construction.
func (c *expCache) at(k int) float64 {
	return c.values[utils.AbsInt(k)]
}
