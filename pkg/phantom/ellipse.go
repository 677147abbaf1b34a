// Package phantom defines the analytic ellipse phantoms used as input to the
// forward projector. A phantom is an ordered list of ellipses; each ellipse
// contributes its amplitude inside its boundary and nothing outside, so the
// line integral of the phantom is the amplitude-weighted sum of chord lengths.
package phantom

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// TableColumns is the number of parameters describing one ellipse in the
// tabular interchange form: centerX, centerY, radiusX, radiusY, angleDegrees,
// amplitude.
const TableColumns = 6

// Ellipse describes a single rotated ellipse in the phantom plane.
// It is a value type; construct one and do not mutate it afterwards.
type Ellipse struct {
	// CenterX and CenterY locate the ellipse center, in the same physical
	// length units as the detector's radial sample positions.
	CenterX float64
	CenterY float64

	// SemiX and SemiY are the semi-axis lengths before rotation.
	// Both must be strictly positive.
	SemiX float64
	SemiY float64

	// Angle is the counter-clockwise rotation around the center, in degrees.
	Angle float64

	// Amplitude is the signed additive contribution of the ellipse interior.
	// A negative amplitude carves a hole out of an enclosing ellipse.
	Amplitude float64
}

// Validate checks the ellipse invariants. Only the semi-axes are constrained;
// center, angle and amplitude may take any real value.
func (e Ellipse) Validate() error {
	if e.SemiX <= 0 || e.SemiY <= 0 {
		return fmt.Errorf("ellipse semi-axes must be positive, got (%g, %g)", e.SemiX, e.SemiY)
	}
	return nil
}

// FromTable converts an n×6 parameter table into an ellipse list.
// Column order is centerX, centerY, radiusX, radiusY, angleDegrees, amplitude.
// A nil table stands for the empty phantom.
func FromTable(table *mat.Dense) ([]Ellipse, error) {
	if table == nil {
		return nil, nil
	}
	rows, cols := table.Dims()
	if cols != TableColumns {
		return nil, fmt.Errorf("malformed ellipse parameters: expected %d columns, got %d", TableColumns, cols)
	}

	ellipses := make([]Ellipse, rows)
	for i := 0; i < rows; i++ {
		ellipses[i] = Ellipse{
			CenterX:   table.At(i, 0),
			CenterY:   table.At(i, 1),
			SemiX:     table.At(i, 2),
			SemiY:     table.At(i, 3),
			Angle:     table.At(i, 4),
			Amplitude: table.At(i, 5),
		}
	}

	return ellipses, nil
}

// Table converts an ellipse list into its n×6 tabular form, the inverse of
// FromTable. The empty phantom maps to a nil table, since a matrix cannot
// have zero rows.
func Table(ellipses []Ellipse) *mat.Dense {
	if len(ellipses) == 0 {
		return nil
	}
	table := mat.NewDense(len(ellipses), TableColumns, nil)
	for i, e := range ellipses {
		table.SetRow(i, []float64{e.CenterX, e.CenterY, e.SemiX, e.SemiY, e.Angle, e.Amplitude})
	}
	return table
}
