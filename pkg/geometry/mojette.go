package geometry

import (
	"fmt"
	"math"
)

// Direction is a discrete Mojette projection direction given by a coprime
// integer vector (P, Q).
type Direction struct {
	P, Q int
}

// Mojette is a discrete-angle geometry: each view is an integer direction
// (p, q) and the detector pitch for that view is 1/√(p²+q²), so bin positions
// land on the lattice projection. Unlike Parallel, the radial spacing varies
// per view.
type Mojette struct {
	// Bins is the number of detector cells per direction.
	Bins int

	// Directions is the discrete view set in input order.
	Directions []Direction

	// subdivide is the per-cell oversampling factor, 1 for the base geometry.
	subdivide int
}

// NewMojette returns a Mojette geometry with bins centered on zero.
// Every direction must be a non-zero vector; (0, 0) has no angle and no
// detector pitch.
func NewMojette(bins int, dirs []Direction) (*Mojette, error) {
	for i, d := range dirs {
		if d.P == 0 && d.Q == 0 {
			return nil, fmt.Errorf("mojette direction %d is (0, 0), must be a non-zero vector", i)
		}
	}
	return &Mojette{Bins: bins, Directions: dirs, subdivide: 1}, nil
}

// Oversample returns a copy with each detector cell cut into factor sub-cells.
func (m *Mojette) Oversample(factor int) Source {
	n := *m
	n.Bins = m.Bins * factor
	n.subdivide = m.subdivide * factor
	return &n
}

// Grid returns the flattened (radial, angular) coordinates. For direction
// (p, q) the view angle is atan2(q, p) and bin i sits at
// (i - (bins-1)/2) · pitch with pitch = 1/(subdivide·√(p²+q²)).
func (m *Mojette) Grid() SampleGrid {
	views := len(m.Directions)
	n := m.Bins * views
	radial := make([]float64, n)
	angular := make([]float64, n)

	center := float64(m.Bins-1) / 2
	for v, d := range m.Directions {
		norm := math.Hypot(float64(d.P), float64(d.Q))
		pitch := 1 / (float64(m.subdivide) * norm)
		angle := math.Atan2(float64(d.Q), float64(d.P))
		for b := 0; b < m.Bins; b++ {
			idx := b*views + v
			radial[idx] = (float64(b) - center) * pitch
			angular[idx] = angle
		}
	}

	return SampleGrid{Radial: radial, Angular: angular, Bins: m.Bins, Views: views}
}
