package projector

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"phantomproj/pkg/phantom"
)

// testGrid returns a small grid sweeping both radial positions and angles.
func testGrid() (radial, angular []float64) {
	positions := []float64{-0.9, -0.45, 0, 0.3, 0.75}
	angles := []float64{0, 0.4, math.Pi / 2, 2.1, 3.0}

	for _, r := range positions {
		for _, a := range angles {
			radial = append(radial, r)
			angular = append(angular, a)
		}
	}
	return radial, angular
}

func maxAbsDiff(a, b []float64) float64 {
	max := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > max {
			max = d
		}
	}
	return max
}

// TestShapePreservation verifies that the output always matches the input
// grid length, for 1D-style and flattened 2D-style grids alike.
func TestShapePreservation(t *testing.T) {
	ellipses := phantom.ModifiedSheppLogan()

	grids := [][2][]float64{
		{{0.5}, {0.1}},
		{{0, 0.1, 0.2, 0.3}, {1, 1, 1, 1}},
	}
	radial, angular := testGrid()
	grids = append(grids, [2][]float64{radial, angular})

	for _, g := range grids {
		sino, err := Project(g[0], g[1], ellipses, 1, 1)
		if err != nil {
			t.Fatalf("Project failed: %v", err)
		}
		if len(sino) != len(g[0]) {
			t.Errorf("expected %d samples, got %d", len(g[0]), len(sino))
		}
	}
}

// TestAdditivity verifies that projecting [A, B] equals projecting [A] plus
// projecting [B] element-wise.
func TestAdditivity(t *testing.T) {
	radial, angular := testGrid()
	a := phantom.Ellipse{CenterX: 0.1, CenterY: -0.2, SemiX: 0.5, SemiY: 0.3, Angle: 25, Amplitude: 1}
	b := phantom.Ellipse{CenterX: -0.3, CenterY: 0.1, SemiX: 0.2, SemiY: 0.6, Angle: -40, Amplitude: -0.5}

	both, err := Project(radial, angular, []phantom.Ellipse{a, b}, 1, 1)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	onlyA, _ := Project(radial, angular, []phantom.Ellipse{a}, 1, 1)
	onlyB, _ := Project(radial, angular, []phantom.Ellipse{b}, 1, 1)

	sum := make([]float64, len(both))
	for i := range sum {
		sum[i] = onlyA[i] + onlyB[i]
	}

	if d := maxAbsDiff(both, sum); d > 1e-12 {
		t.Errorf("additivity violated, max deviation %g", d)
	}
}

// TestAmplitudeLinearity verifies that scaling the amplitude scales every
// sample. Doubling is exact in floating point; other factors are checked
// with a tight tolerance.
func TestAmplitudeLinearity(t *testing.T) {
	radial, angular := testGrid()
	base := phantom.Ellipse{CenterX: 0.1, CenterY: 0.2, SemiX: 0.4, SemiY: 0.7, Angle: 15, Amplitude: 1}

	unit, err := Project(radial, angular, []phantom.Ellipse{base}, 1, 1)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	doubled := base
	doubled.Amplitude = 2
	twice, _ := Project(radial, angular, []phantom.Ellipse{doubled}, 1, 1)
	for i := range unit {
		if twice[i] != 2*unit[i] {
			t.Fatalf("doubling amplitude not exact at sample %d: %g vs %g", i, twice[i], 2*unit[i])
		}
	}

	tripled := base
	tripled.Amplitude = 3
	thrice, _ := Project(radial, angular, []phantom.Ellipse{tripled}, 1, 1)
	for i := range unit {
		if math.Abs(thrice[i]-3*unit[i]) > 1e-12 {
			t.Fatalf("tripling amplitude off at sample %d: %g vs %g", i, thrice[i], 3*unit[i])
		}
	}
}

// TestZeroOutside verifies that rays beyond the projected extent of a
// centered axis-aligned ellipse contribute exactly zero.
func TestZeroOutside(t *testing.T) {
	e := phantom.Ellipse{SemiX: 2, SemiY: 1, Amplitude: 1}

	var radial, angular []float64
	for _, r := range []float64{-3, -2, 2, 2.5, 10} {
		for _, a := range []float64{0, 0.7, 1.3, 2.9} {
			radial = append(radial, r)
			angular = append(angular, a)
		}
	}

	sino, err := Project(radial, angular, []phantom.Ellipse{e}, 1, 1)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	for i, v := range sino {
		if v != 0 {
			t.Errorf("sample %d (r=%g, phi=%g): expected 0, got %g", i, radial[i], angular[i], v)
		}
	}
}

// TestCircleSymmetry verifies that a circle's contribution at a fixed radial
// offset from its center does not depend on the view angle.
func TestCircleSymmetry(t *testing.T) {
	circle := phantom.Ellipse{CenterX: 0.3, CenterY: -0.2, SemiX: 0.5, SemiY: 0.5, Amplitude: 1}
	offset := 0.2

	angles := []float64{0, 0.3, 1.1, math.Pi / 2, 2.6, 3.1}
	radial := make([]float64, len(angles))
	for i, a := range angles {
		// Keep the ray at the same distance from the circle center at
		// every angle.
		radial[i] = circle.CenterX*math.Cos(a) + circle.CenterY*math.Sin(a) + offset
	}

	sino, err := Project(radial, angles, []phantom.Ellipse{circle}, 1, 1)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	for i := 1; i < len(sino); i++ {
		if math.Abs(sino[i]-sino[0]) > 1e-9 {
			t.Errorf("angle %g: expected %g, got %g", angles[i], sino[0], sino[i])
		}
	}
}

// TestFlipConsistency verifies that an x-flip of the grid equals projecting
// the mirrored ellipse: center (-cx, cy) and angle 180° − θ.
func TestFlipConsistency(t *testing.T) {
	radial, angular := testGrid()
	e := phantom.Ellipse{CenterX: 0.25, CenterY: -0.15, SemiX: 0.4, SemiY: 0.2, Angle: 33, Amplitude: 1.5}

	flipped, err := Project(radial, angular, []phantom.Ellipse{e}, -1, 1)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	mirrored := phantom.Ellipse{
		CenterX:   -e.CenterX,
		CenterY:   e.CenterY,
		SemiX:     e.SemiX,
		SemiY:     e.SemiY,
		Angle:     180 - e.Angle,
		Amplitude: e.Amplitude,
	}
	direct, _ := Project(radial, angular, []phantom.Ellipse{mirrored}, 1, 1)

	if d := maxAbsDiff(flipped, direct); d > 1e-12 {
		t.Errorf("flip transform mismatch, max deviation %g", d)
	}
}

// TestCenteredCircleChord checks the chord-length formula against hand
// computed values for a centered circle of radius 5: the full diameter at
// the center ray, zero at the tangent ray and beyond.
func TestCenteredCircleChord(t *testing.T) {
	circle := phantom.Ellipse{SemiX: 5, SemiY: 5, Amplitude: 1}

	radial := []float64{0, 5, 10}
	angular := []float64{0, 0, 0}
	expected := []float64{10, 0, 0}

	sino, err := Project(radial, angular, []phantom.Ellipse{circle}, 1, 1)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	for i := range expected {
		if sino[i] != expected[i] {
			t.Errorf("r=%g: expected %g, got %g", radial[i], expected[i], sino[i])
		}
	}
}

// TestScaleFlagsPermissive verifies that scale values other than -1 behave
// exactly like +1.
func TestScaleFlagsPermissive(t *testing.T) {
	radial, angular := testGrid()
	e := phantom.Ellipse{CenterX: 0.2, CenterY: 0.1, SemiX: 0.3, SemiY: 0.5, Angle: 10, Amplitude: 1}

	plain, err := Project(radial, angular, []phantom.Ellipse{e}, 1, 1)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	for _, scale := range []float64{0, 2, -3, 0.5} {
		odd, _ := Project(radial, angular, []phantom.Ellipse{e}, scale, scale)
		if d := maxAbsDiff(plain, odd); d != 0 {
			t.Errorf("scale %g: expected identical result, max deviation %g", scale, d)
		}
	}
}

// TestWorkerDeterminism verifies bit-identical output for any worker count.
func TestWorkerDeterminism(t *testing.T) {
	radial, angular := testGrid()
	ellipses := phantom.SheppLogan()

	single, err := ProjectWithOptions(radial, angular, ellipses, Options{XScale: 1, YScale: 1, Workers: 1})
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	for _, workers := range []int{2, 7, 64} {
		got, err := ProjectWithOptions(radial, angular, ellipses, Options{XScale: 1, YScale: 1, Workers: workers})
		if err != nil {
			t.Fatalf("Project with %d workers failed: %v", workers, err)
		}
		for i := range single {
			if got[i] != single[i] {
				t.Fatalf("%d workers: sample %d differs: %g vs %g", workers, i, got[i], single[i])
			}
		}
	}
}

// TestGridShapeMismatch verifies the shape precondition.
func TestGridShapeMismatch(t *testing.T) {
	_, err := Project([]float64{0, 1, 2}, []float64{0, 1}, phantom.SheppLogan(), 1, 1)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

// TestMalformedTable verifies that a table with the wrong column count is
// rejected before any computation.
func TestMalformedTable(t *testing.T) {
	table := mat.NewDense(2, 5, nil)
	_, err := ProjectTable([]float64{0}, []float64{0}, table, 1, 1)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

// TestInvalidEllipse verifies that non-positive semi-axes are rejected.
func TestInvalidEllipse(t *testing.T) {
	bad := []phantom.Ellipse{{SemiX: 0, SemiY: 1, Amplitude: 1}}
	_, err := Project([]float64{0}, []float64{0}, bad, 1, 1)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

// TestProjectTableMatchesEllipses verifies the two phantom input forms agree.
func TestProjectTableMatchesEllipses(t *testing.T) {
	radial, angular := testGrid()
	ellipses := phantom.ModifiedSheppLogan()

	fromList, err := Project(radial, angular, ellipses, 1, 1)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	fromTable, err := ProjectTable(radial, angular, phantom.Table(ellipses), 1, 1)
	if err != nil {
		t.Fatalf("ProjectTable failed: %v", err)
	}

	if d := maxAbsDiff(fromList, fromTable); d != 0 {
		t.Errorf("table form disagrees with list form, max deviation %g", d)
	}
}
