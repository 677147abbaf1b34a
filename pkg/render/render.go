// Package render turns sinograms into images for inspection. Values are
// normalized to the sinogram's own min/max range; the detector axis maps to
// image rows and the view axis to columns.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
)

// normalize returns the scaling of a sinogram value to [0, 1]. A constant
// sinogram maps everything to zero.
func normalize(data []float64) func(float64) float64 {
	min := floats.Min(data)
	max := floats.Max(data)
	if max <= min {
		return func(float64) float64 { return 0 }
	}
	span := max - min
	return func(v float64) float64 { return (v - min) / span }
}

// Gray16 renders the sinogram as a 16-bit grayscale image, bins down the
// rows and views across the columns.
func Gray16(data []float64, bins, views int) (*image.Gray16, error) {
	if len(data) != bins*views {
		return nil, fmt.Errorf("data length %d does not match %dx%d sinogram", len(data), bins, views)
	}

	norm := normalize(data)
	img := image.NewGray16(image.Rect(0, 0, views, bins))
	for b := 0; b < bins; b++ {
		for v := 0; v < views; v++ {
			value := uint16(norm(data[b*views+v]) * 65535)
			img.SetGray16(v, b, color.Gray16{Y: value})
		}
	}
	return img, nil
}

// heatLow and heatHigh are the endpoints of the heat palette; intermediate
// values blend between them in Luv space, which keeps the perceived
// brightness ramp even.
var (
	heatLow  = colorful.Color{R: 0.05, G: 0.03, B: 0.25}
	heatHigh = colorful.Color{R: 0.99, G: 0.91, B: 0.14}
)

// Heatmap renders the sinogram with a perceptual two-stop color ramp.
func Heatmap(data []float64, bins, views int) (*image.RGBA, error) {
	if len(data) != bins*views {
		return nil, fmt.Errorf("data length %d does not match %dx%d sinogram", len(data), bins, views)
	}

	norm := normalize(data)
	img := image.NewRGBA(image.Rect(0, 0, views, bins))
	for b := 0; b < bins; b++ {
		for v := 0; v < views; v++ {
			c := heatLow.BlendLuv(heatHigh, norm(data[b*views+v])).Clamped()
			img.Set(v, b, c)
		}
	}
	return img, nil
}

// SavePNG writes an image as a PNG file.
func SavePNG(img image.Image, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
