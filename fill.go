package gdfmm

import (
	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/FYP-DES5/gdfmm/rimage"
)

// Filler fills holes in depth maps, guided by an aligned color image. A Filler
// is immutable after construction and safe for concurrent use; every Fill call
// works on its own copy of the depth data.
type Filler struct {
	distCache  *expCache
	colorCache *expCache
	windowSize int
	blurSigma  float64
	logger     golog.Logger
}

// NewFiller validates the parameters and precomputes the bilateral kernels.
// sigmaDistance and sigmaColor are the spatial and color bandwidths of the
// bilateral predictor, blurSigma smooths the color image before its gradients
// are taken, and windowSize (odd, >= 3) is the side length of the prediction
// window. A nil logger falls back to the global one.
func NewFiller(sigmaDistance, sigmaColor, blurSigma float64, windowSize int, logger golog.Logger) (*Filler, error) {
	if sigmaDistance <= 0 {
		return nil, errors.Errorf("sigmaDistance must be positive, got %v", sigmaDistance)
	}
	if sigmaColor <= 0 {
		return nil, errors.Errorf("sigmaColor must be positive, got %v", sigmaColor)
	}
	if blurSigma < 0 {
		return nil, errors.Errorf("blurSigma cannot be negative, got %v", blurSigma)
	}
	if windowSize < 3 || windowSize%2 == 0 {
		return nil, errors.Errorf("windowSize must be odd and at least 3, got %d", windowSize)
	}
	if logger == nil {
		logger = golog.Global()
	}
	return &Filler{
		// window displacements never exceed the radius, so windowSize bounds them;
		// color channel differences are bounded by 255.
		distCache:  newExpCache(sigmaDistance, windowSize),
		colorCache: newExpCache(sigmaColor, 255),
		windowSize: windowSize,
		blurSigma:  blurSigma,
		logger:     logger,
	}, nil
}

// Fill returns a copy of dm with every unknown pixel filled in using the
// bilateral predictor. dm is not modified. Known pixels are preserved exactly.
func (f *Filler) Fill(dm *rimage.DepthMap, img *rimage.Image) (*rimage.DepthMap, error) {
	return f.fill(dm, img, f.predictBilateral)
}

// FillLeastSquares is like Fill but predicts each pixel with a ridge-regressed
// linear model of depth against color, which holds up better when the holes
// are much larger than the window. epsilon (> 0) is the ridge strength and
// constant the magnitude of the model's bias feature. truncation is reserved
// for range clamping of predictions and currently ignored.
func (f *Filler) FillLeastSquares(dm *rimage.DepthMap, img *rimage.Image, epsilon, constant, truncation float64) (*rimage.DepthMap, error) {
	if epsilon <= 0 {
		return nil, errors.Errorf("epsilon must be positive, got %v", epsilon)
	}
	return f.fill(dm, img, func(d *depthField, img *rimage.Image, x, y int) (float64, error) {
		return f.predictLeastSquares(d, img, x, y, epsilon, constant)
	})
}

func (f *Filler) fill(dm *rimage.DepthMap, img *rimage.Image, predict predictor) (*rimage.DepthMap, error) {
	if dm == nil || img == nil {
		return nil, errors.New("both a depth map and a color image are required")
	}
	if img.Width() != dm.Width() || img.Height() != dm.Height() {
		return nil, errors.Errorf("depth map (%dx%d) and color image (%dx%d) must have the same size",
			dm.Width(), dm.Height(), img.Width(), img.Height())
	}

	unknown := 0
	for y := 0; y < dm.Height(); y++ {
		for x := 0; x < dm.Width(); x++ {
			if dm.GetDepth(x, y) == 0 {
				unknown++
			}
		}
	}
	f.logger.Debugf("filling %d unknown pixels of %d", unknown, dm.Width()*dm.Height())

	d := newDepthField(dm)
	grad := computeGradientField(img, f.blurSigma)
	if err := propagate(d, img, grad, predict); err != nil {
		if errors.Is(err, ErrTooFewKnown) {
			if stats, serr := AnalyzeHoles(dm, img); serr == nil {
				err = errors.Wrapf(err, "a window of at least %d may help", stats.RecommendedWindow(f.windowSize))
			}
		}
		return nil, err
	}
	return d.toDepthMap(), nil
}
