package gdfmm

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/FYP-DES5/gdfmm/rimage"
	"github.com/FYP-DES5/gdfmm/utils"
)

const (
	// stdFloor keeps a textureless window (zero variance in a color channel)
	// from dividing by zero during normalization.
	stdFloor = 1e-5

	lsqFeatures = 4
)

// predictLeastSquares predicts the unknown depth at (x, y) by fitting
// depth ≈ β·(R, G, B, bias) over the known pixels in the surrounding window,
// with ridge regularization epsilon on the normal equations. The features are
// centered and scaled before the solve; the bias column carries the constant
// feature magnitude instead. Returns 0 (retry later) when 3 or fewer known
// pixels are in the window.
func (f *Filler) predictLeastSquares(d *depthField, img *rimage.Image, x, y int, epsilon, constant float64) (float64, error) {
	radius := f.windowSize / 2
	lowerY := utils.MaxInt(0, y-radius)
	lowerX := utils.MaxInt(0, x-radius)
	upperY := utils.MinInt(d.height-1, y+radius)
	upperX := utils.MinInt(d.width-1, x+radius)

	rows := make([]float64, 0, f.windowSize*f.windowSize*lsqFeatures)
	targets := make([]float64, 0, f.windowSize*f.windowSize)
	for n := lowerY; n <= upperY; n++ {
		for m := lowerX; m <= upperX; m++ {
			depth := d.at(m, n)
			if depth == 0 {
				continue
			}
			c := img.GetXY(m, n)
			rows = append(rows, float64(c.R), float64(c.G), float64(c.B), 0)
			targets = append(targets, depth)
		}
	}

	numKnown := len(targets)
	if numKnown <= 3 {
		return 0, nil
	}

	X := mat.NewDense(numKnown, lsqFeatures, rows)
	meanY := stat.Mean(targets, nil)
	for i := range targets {
		targets[i] -= meanY
	}

	var meanX, stdX [lsqFeatures]float64
	col := make([]float64, numKnown)
	for j := 0; j < lsqFeatures; j++ {
		mat.Col(col, j, X)
		meanX[j] = stat.Mean(col, nil)
		sumSquares := 0.0
		for i := 0; i < numKnown; i++ {
			centered := col[i] - meanX[j]
			X.Set(i, j, centered)
			sumSquares += centered * centered
		}
		stdX[j] = math.Max(math.Sqrt(sumSquares/float64(numKnown)), stdFloor)
	}

	// The bias column is exempt from scaling and carries the constant feature.
	stdX[lsqFeatures-1] = 1
	for i := 0; i < numKnown; i++ {
		X.Set(i, lsqFeatures-1, constant)
		for j := 0; j < lsqFeatures-1; j++ {
			X.Set(i, j, X.At(i, j)/stdX[j])
		}
	}

	var normal mat.Dense
	normal.Mul(X.T(), X)
	regularized := mat.NewSymDense(lsqFeatures, nil)
	for i := 0; i < lsqFeatures; i++ {
		for j := i; j < lsqFeatures; j++ {
			v := normal.At(i, j)
			if i == j {
				v += epsilon
			}
			regularized.SetSym(i, j, v)
		}
	}

	var xty mat.VecDense
	xty.MulVec(X.T(), mat.NewVecDense(numKnown, targets))

	var chol mat.Cholesky
	if !chol.Factorize(regularized) {
		return 0, errors.Errorf("regularized normal equations are not positive definite at (%d, %d)", x, y)
	}
	var beta mat.VecDense
	if err := chol.SolveVecTo(&beta, &xty); err != nil {
		return 0, errors.Wrapf(err, "solving for depth at (%d, %d)", x, y)
	}

	c := img.GetXY(x, y)
	test := mat.NewVecDense(lsqFeatures, []float64{float64(c.R), float64(c.G), float64(c.B), 0})
	for j := 0; j < lsqFeatures-1; j++ {
		test.SetVec(j, (test.AtVec(j)-meanX[j])/stdX[j])
	}
	test.SetVec(lsqFeatures-1, math.Max(constant, stdFloor))

	prediction := mat.Dot(&beta, test) + meanY
	if math.IsNaN(prediction) || math.IsInf(prediction, 0) {
		return 0, errors.Errorf("non-finite depth prediction at (%d, %d)", x, y)
	}
	return prediction, nil
}
