// Package projector computes exact line integrals of ellipse phantoms.
//
// For a line at signed distance r from the origin with normal direction ϕ,
// the integral of an ellipse's indicator function is the length of the chord
// the line cuts from the ellipse, which has a closed form: no discretization
// of the phantom is involved. The projector evaluates that closed form over
// a whole grid of (r, ϕ) samples and accumulates the amplitude-weighted
// contributions of every ellipse in the phantom.
package projector

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"

	"phantomproj/pkg/phantom"
)

// Options controls a projection run. The zero value is ready to use:
// no axis flips and one worker per CPU.
type Options struct {
	// XScale and YScale flip the phantom across the y and x axis when set
	// to -1. Any other value leaves the corresponding axis untouched.
	XScale float64
	YScale float64

	// Workers caps the number of goroutines sweeping the grid.
	// Zero or negative means one per available CPU. The result is
	// bit-identical for every worker count, since each sample accumulates
	// its ellipses sequentially in input order.
	Workers int
}

// chord holds the per-ellipse quantities that do not depend on the sample,
// with the flip transform already folded into the rotation and center.
type chord struct {
	cosTheta, sinTheta float64
	centerX, centerY   float64
	semiX, semiY       float64
	scale              float64
}

// newChord resolves an ellipse against the flip flags. The rotation is
// adjusted first: yscale == -1 negates θ, then xscale == -1 replaces θ with
// π − θ; both may apply. The center coordinates are scaled directly.
func newChord(e phantom.Ellipse, xscale, yscale float64) chord {
	theta := e.Angle * math.Pi / 180
	if yscale == -1 {
		theta = -theta
	}
	if xscale == -1 {
		theta = math.Pi - theta
	}

	cx, cy := e.CenterX, e.CenterY
	if xscale == -1 {
		cx = -cx
	}
	if yscale == -1 {
		cy = -cy
	}

	sinTheta, cosTheta := math.Sincos(theta)
	return chord{
		cosTheta: cosTheta,
		sinTheta: sinTheta,
		centerX:  cx,
		centerY:  cy,
		semiX:    e.SemiX,
		semiY:    e.SemiY,
		scale:    2 * e.Amplitude * e.SemiX * e.SemiY,
	}
}

// at evaluates the ellipse's contribution to the ray (r, ϕ), given the
// precomputed cos ϕ and sin ϕ. rp² is the squared semi-extent of the
// ellipse's shadow along the view direction and sp the projection of the
// center onto it; rays beyond the shadow clamp to zero rather than taking
// the square root of a negative number.
func (c chord) at(r, cosPhi, sinPhi float64) float64 {
	u := c.semiX * (cosPhi*c.cosTheta + sinPhi*c.sinTheta)
	v := c.semiY * (sinPhi*c.cosTheta - cosPhi*c.sinTheta)
	rp2 := u*u + v*v

	sp := c.centerX*cosPhi + c.centerY*sinPhi
	d := r - sp

	under := rp2 - d*d
	if under <= 0 {
		return 0
	}
	return c.scale / rp2 * math.Sqrt(under)
}

// Project computes the summed sinogram of the ellipse list over paired
// (radial, angular) sample coordinates. The slices are element-wise pairs
// and may be a flattened grid of any shape; the output has the same length
// and layout. Angular values are radians, radial values share the phantom's
// length units. xscale and yscale of -1 flip the phantom; any other value
// is a no-op.
//
// Projection is a pure function of its inputs: the same grid and phantom
// always produce the same sinogram, and no state is retained between calls.
func Project(radial, angular []float64, ellipses []phantom.Ellipse, xscale, yscale float64) ([]float64, error) {
	return ProjectWithOptions(radial, angular, ellipses, Options{XScale: xscale, YScale: yscale})
}

// ProjectTable is Project for phantoms in the n×6 tabular interchange form
// (columns: centerX, centerY, radiusX, radiusY, angleDegrees, amplitude).
func ProjectTable(radial, angular []float64, table *mat.Dense, xscale, yscale float64) ([]float64, error) {
	ellipses, err := phantom.FromTable(table)
	if err != nil {
		return nil, &ValidationError{Msg: err.Error()}
	}
	return Project(radial, angular, ellipses, xscale, yscale)
}

// ProjectWithOptions is Project with explicit worker control.
func ProjectWithOptions(radial, angular []float64, ellipses []phantom.Ellipse, opts Options) ([]float64, error) {
	if len(radial) != len(angular) {
		return nil, validationf("grid shape mismatch: %d radial vs %d angular samples", len(radial), len(angular))
	}
	for i, e := range ellipses {
		if err := e.Validate(); err != nil {
			return nil, validationf("ellipse %d: %v", i, err)
		}
	}

	n := len(radial)
	sinogram := make([]float64, n)
	if n == 0 || len(ellipses) == 0 {
		return sinogram, nil
	}

	// The view trigonometry is shared by every ellipse, so compute it once
	// for the whole grid.
	cosPhi := make([]float64, n)
	sinPhi := make([]float64, n)
	for i, phi := range angular {
		sinPhi[i], cosPhi[i] = math.Sincos(phi)
	}

	chords := make([]chord, len(ellipses))
	for i, e := range ellipses {
		chords[i] = newChord(e, opts.XScale, opts.YScale)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	// Split the grid into contiguous index ranges, one worker per range.
	// Each sample is owned by exactly one worker, so there is no shared
	// accumulation to coordinate.
	samplesPerWorker := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * samplesPerWorker
		end := start + samplesPerWorker
		if end > n {
			end = n
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				sum := 0.0
				for _, c := range chords {
					sum += c.at(radial[i], cosPhi[i], sinPhi[i])
				}
				sinogram[i] = sum
			}
		}(start, end)
	}
	wg.Wait()

	return sinogram, nil
}
