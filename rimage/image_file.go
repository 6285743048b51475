package rimage

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ReadImageFromFile decodes a PNG or JPEG file.
func ReadImageFromFile(fn string) (image.Image, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot decode %s", fn)
	}
	return img, nil
}

// WriteImageToFile writes the image out based on the file extension.
func WriteImageToFile(fn string, img image.Image) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	switch filepath.Ext(fn) {
	case ".png":
		return png.Encode(f, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, nil)
	default:
		return errors.Errorf("rimage.WriteImageToFile doesn't support %s", fn)
	}
}

// ReadDepthMapFromFile reads a 16-bit grayscale PNG as a depth map.
func ReadDepthMapFromFile(fn string) (*DepthMap, error) {
	img, err := ReadImageFromFile(fn)
	if err != nil {
		return nil, err
	}
	return ConvertImageToDepthMap(img)
}

// WriteToFile writes the depth map as a 16-bit grayscale PNG.
func (dm *DepthMap) WriteToFile(fn string) error {
	return WriteImageToFile(fn, dm.ToGray16())
}
