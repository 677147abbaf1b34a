// Package geometry describes tomographic sampling geometries: where the
// detector bins sit and from which angles the phantom is viewed. Every
// geometry reduces to a grid of (radial, angular) ray coordinates in the
// parallel-beam parameterization, which is all the projector consumes.
package geometry

import (
	"gonum.org/v1/gonum/floats"
)

// SampleGrid holds the per-ray sampling coordinates of a geometry, flattened
// bin-major: index = bin*Views + view. Radial is the signed distance of the
// ray from the origin in phantom length units; Angular is the ray's normal
// direction in radians. The two slices always have equal length Bins*Views.
type SampleGrid struct {
	Radial  []float64
	Angular []float64
	Bins    int
	Views   int
}

// Source is the narrow contract the projector depends on. A Source is an
// immutable description; Oversample returns a derived description with
// factor-times finer radial sampling and unchanged angular sampling.
type Source interface {
	Oversample(factor int) Source
	Grid() SampleGrid
}

// binCenters returns n bin centers spanning (lo, hi): the interval is cut
// into n equal cells and the midpoint of each cell is taken.
func binCenters(n int, lo, hi float64) []float64 {
	edges := make([]float64, n+1)
	floats.Span(edges, lo, hi)

	centers := make([]float64, n)
	for i := range centers {
		centers[i] = 0.5 * (edges[i] + edges[i+1])
	}
	return centers
}

// viewAngles returns n angles uniformly covering [0, sweep), half-open so
// that the first view of the next rotation is not duplicated.
func viewAngles(n int, sweep float64) []float64 {
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = sweep * float64(i) / float64(n)
	}
	return angles
}
