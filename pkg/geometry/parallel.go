package geometry

import "math"

// Parallel is a parallel-beam geometry: per view all rays share one normal
// direction and the detector bins are offsets along the detector line.
type Parallel struct {
	// Bins is the number of detector cells per view.
	Bins int

	// Views is the number of projection angles, uniform over [0, π).
	Views int

	// FOV is the half-extent of the detector; bin centers span (-FOV, FOV).
	FOV float64

	// Offset shifts every detector position, modeling a detector whose
	// center of rotation is not the middle cell.
	Offset float64
}

// NewParallel returns a parallel-beam geometry with the detector spanning
// (-fov, fov) and views uniform over a half rotation.
func NewParallel(bins, views int, fov float64) *Parallel {
	return &Parallel{Bins: bins, Views: views, FOV: fov}
}

// Oversample returns a copy with factor-times more detector cells over the
// same span. Each original cell is cut into factor sub-cells, so averaging
// groups of factor consecutive radial samples recovers the original cell.
func (p *Parallel) Oversample(factor int) Source {
	q := *p
	q.Bins = p.Bins * factor
	return &q
}

// Grid returns the flattened (radial, angular) sampling coordinates.
func (p *Parallel) Grid() SampleGrid {
	positions := binCenters(p.Bins, -p.FOV, p.FOV)
	angles := viewAngles(p.Views, math.Pi)

	n := p.Bins * p.Views
	radial := make([]float64, n)
	angular := make([]float64, n)
	for b := 0; b < p.Bins; b++ {
		for v := 0; v < p.Views; v++ {
			idx := b*p.Views + v
			radial[idx] = positions[b] + p.Offset
			angular[idx] = angles[v]
		}
	}

	return SampleGrid{Radial: radial, Angular: angular, Bins: p.Bins, Views: p.Views}
}
