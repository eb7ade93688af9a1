package api

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"math"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"campus-connect-client/model"
)

// prepareIDCard decodes the uploaded ID card and, when either dimension
// exceeds maxDim, scales it down and re-encodes as JPEG. Images already
// within bounds pass through untouched.
func prepareIDCard(upload *model.Upload, maxDim int) (*model.Upload, error) {
	src, _, err := image.Decode(bytes.NewReader(upload.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: id card must be an image file", model.ErrInvalidInput)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	largest := width
	if height > largest {
		largest = height
	}
	if largest <= maxDim {
		return upload, nil
	}

	scale := float64(maxDim) / float64(largest)
	targetWidth := int(math.Round(float64(width) * scale))
	targetHeight := int(math.Round(float64(height) * scale))
	if targetWidth < 1 {
		targetWidth = 1
	}
	if targetHeight < 1 {
		targetHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return &model.Upload{
		Filename:    upload.Filename,
		ContentType: "image/jpeg",
		Data:        buf.Bytes(),
	}, nil
}
