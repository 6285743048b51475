// Package gdfmm fills holes in depth maps with a guided fast-marching method.
// A color image aligned with the depth map steers both the order in which
// unknown pixels are visited and the per-pixel depth prediction, so that depth
// edges end up following color edges.
//
// Two predictors are available: a bilateral-weighted mean of the known depths
// around a pixel (cheap, good for small holes), and a ridge-regressed linear
// model depth ≈ β·RGB + offset fit over the same window (more robust when the
// missing regions are large).
package gdfmm
