// Package main is a command that fills the holes of a depth image, guided by
// an aligned color image.
package main

import (
	"flag"

	"github.com/edaniels/golog"

	"github.com/FYP-DES5/gdfmm"
	"github.com/FYP-DES5/gdfmm/rimage"
)

var logger = golog.NewDevelopmentLogger("depthfill")

func main() {
	windowSize := flag.Int("window", 11, "side length of the prediction window (odd, >= 3)")
	sigmaDistance := flag.Float64("sigma-dist", 2.5, "spatial bandwidth of the bilateral predictor")
	sigmaColor := flag.Float64("sigma-color", 20, "color bandwidth of the bilateral predictor")
	blurSigma := flag.Float64("blur", 1.0, "gaussian blur applied to the color image before its gradients are taken")
	leastSquares := flag.Bool("ls", false, "predict with the least-squares model instead of the bilateral mean")
	epsilon := flag.Float64("epsilon", 1e-3, "ridge strength for -ls")
	constant := flag.Float64("constant", 1.0, "bias feature magnitude for -ls")
	pretty := flag.String("pretty", "", "also write a color visualization of the result here")

	flag.Parse()
	if flag.NArg() < 3 {
		logger.Fatal("need three args: <depth.png> <color.png> <out.png>")
	}

	dm, err := rimage.ReadDepthMapFromFile(flag.Arg(0))
	if err != nil {
		logger.Fatalf("reading depth map: %v", err)
	}
	colorImg, err := rimage.ReadImageFromFile(flag.Arg(1))
	if err != nil {
		logger.Fatalf("reading color image: %v", err)
	}
	img := rimage.ConvertImage(colorImg)

	stats, err := gdfmm.AnalyzeHoles(dm, img)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infow("missing data",
		"holes", len(stats.Holes),
		"unreachable", stats.Unreachable,
		"recommended window", stats.RecommendedWindow(*windowSize),
	)

	filler, err := gdfmm.NewFiller(*sigmaDistance, *sigmaColor, *blurSigma, *windowSize, logger)
	if err != nil {
		logger.Fatal(err)
	}

	var filled *rimage.DepthMap
	if *leastSquares {
		filled, err = filler.FillLeastSquares(dm, img, *epsilon, *constant, 0)
	} else {
		filled, err = filler.Fill(dm, img)
	}
	if err != nil {
		logger.Fatal(err)
	}

	if err := filled.WriteToFile(flag.Arg(2)); err != nil {
		logger.Fatal(err)
	}
	if *pretty != "" {
		if err := rimage.WriteImageToFile(*pretty, filled.ToPrettyPicture(0, rimage.MaxDepth)); err != nil {
			logger.Fatal(err)
		}
	}
}
