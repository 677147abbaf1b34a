package geometry

import (
	"fmt"
	"math"
)

// Fan is an equiangular fan-beam geometry: rays diverge from a point source
// circling the phantom at radius SourceRadius. Every fan ray is still a
// straight line, so it has an exact parallel-beam reparameterization
//
//	r = R·sin γ,  ϕ = β + γ
//
// where β is the source angle and γ the ray's angle within the fan. Grid
// exposes those parallel coordinates, which is why the projector needs no
// fan-specific code path: both radial and angular vary per element.
type Fan struct {
	// Bins is the number of rays per fan.
	Bins int

	// Views is the number of source positions, uniform over [0, 2π).
	Views int

	// SourceRadius is the distance from the rotation center to the source.
	SourceRadius float64

	// HalfFan is the fan half-opening angle in radians; ray angles γ take
	// bin-center values in (-HalfFan, HalfFan).
	HalfFan float64
}

// NewFan returns an equiangular fan-beam geometry. The fan half-angle is
// chosen so the fan exactly covers a centered field of view of radius fov,
// which requires the source to orbit outside it.
func NewFan(bins, views int, sourceRadius, fov float64) (*Fan, error) {
	if fov <= 0 {
		return nil, fmt.Errorf("fan field of view must be positive, got %g", fov)
	}
	if sourceRadius <= fov {
		return nil, fmt.Errorf("fan source radius %g must exceed the field of view %g", sourceRadius, fov)
	}
	return &Fan{
		Bins:         bins,
		Views:        views,
		SourceRadius: sourceRadius,
		HalfFan:      math.Asin(fov / sourceRadius),
	}, nil
}

// Oversample returns a copy with factor-times more rays per fan over the
// same opening angle.
func (f *Fan) Oversample(factor int) Source {
	g := *f
	g.Bins = f.Bins * factor
	return &g
}

// Grid returns the flattened parallel-beam coordinates of every fan ray.
func (f *Fan) Grid() SampleGrid {
	gammas := binCenters(f.Bins, -f.HalfFan, f.HalfFan)
	betas := viewAngles(f.Views, 2*math.Pi)

	n := f.Bins * f.Views
	radial := make([]float64, n)
	angular := make([]float64, n)
	for b := 0; b < f.Bins; b++ {
		sin := math.Sin(gammas[b])
		for v := 0; v < f.Views; v++ {
			idx := b*f.Views + v
			radial[idx] = f.SourceRadius * sin
			angular[idx] = betas[v] + gammas[b]
		}
	}

	return SampleGrid{Radial: radial, Angular: angular, Bins: f.Bins, Views: f.Views}
}
