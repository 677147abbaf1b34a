package projector

import (
	"fmt"

	"phantomproj/pkg/downsample"
	"phantomproj/pkg/geometry"
	"phantomproj/pkg/phantom"
)

// Sinogram is a projected phantom laid out row-major with the detector bin
// index major and the view index minor, matching geometry.SampleGrid.
type Sinogram struct {
	Data  []float64
	Bins  int
	Views int
}

// At returns the value at detector bin b of view v.
func (s *Sinogram) At(b, v int) float64 {
	return s.Data[b*s.Views+v]
}

// ProjectGeometry projects an ellipse phantom through a sampling geometry.
//
// The geometry is first refined to oversample-times finer radial sampling,
// projected, and the result box-averaged back down along the detector axis,
// emulating detector cells of finite width instead of infinitesimal rays.
// An oversample of 1 projects the geometry's own grid and returns it
// untouched. The geometry is never mutated.
func ProjectGeometry(src geometry.Source, ellipses []phantom.Ellipse, oversample int, xscale, yscale float64) (*Sinogram, error) {
	return ProjectGeometryWithOptions(src, ellipses, oversample, Options{XScale: xscale, YScale: yscale})
}

// ProjectGeometryWithOptions is ProjectGeometry with explicit worker control.
func ProjectGeometryWithOptions(src geometry.Source, ellipses []phantom.Ellipse, oversample int, opts Options) (*Sinogram, error) {
	if oversample < 1 {
		return nil, validationf("oversample factor must be a positive integer, got %d", oversample)
	}

	grid := src.Oversample(oversample).Grid()
	data, err := ProjectWithOptions(grid.Radial, grid.Angular, ellipses, opts)
	if err != nil {
		return nil, err
	}

	if oversample == 1 {
		return &Sinogram{Data: data, Bins: grid.Bins, Views: grid.Views}, nil
	}

	reduced, bins, views, err := downsample.Box(data, grid.Bins, grid.Views, oversample, 1)
	if err != nil {
		return nil, fmt.Errorf("reducing oversampled sinogram: %w", err)
	}
	return &Sinogram{Data: reduced, Bins: bins, Views: views}, nil
}
