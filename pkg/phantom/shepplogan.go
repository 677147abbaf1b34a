package phantom

// sheppLoganGeometry is the classic ten-ellipse head geometry from
// Shepp & Logan (1974), in the conventional unit-disk coordinates.
// Amplitudes are filled in per variant.
var sheppLoganGeometry = []Ellipse{
	{CenterX: 0, CenterY: 0, SemiX: 0.69, SemiY: 0.92, Angle: 0},
	{CenterX: 0, CenterY: -0.0184, SemiX: 0.6624, SemiY: 0.874, Angle: 0},
	{CenterX: 0.22, CenterY: 0, SemiX: 0.11, SemiY: 0.31, Angle: -18},
	{CenterX: -0.22, CenterY: 0, SemiX: 0.16, SemiY: 0.41, Angle: 18},
	{CenterX: 0, CenterY: 0.35, SemiX: 0.21, SemiY: 0.25, Angle: 0},
	{CenterX: 0, CenterY: 0.1, SemiX: 0.046, SemiY: 0.046, Angle: 0},
	{CenterX: 0, CenterY: -0.1, SemiX: 0.046, SemiY: 0.046, Angle: 0},
	{CenterX: -0.08, CenterY: -0.605, SemiX: 0.046, SemiY: 0.023, Angle: 0},
	{CenterX: 0, CenterY: -0.606, SemiX: 0.023, SemiY: 0.023, Angle: 0},
	{CenterX: 0.06, CenterY: -0.605, SemiX: 0.023, SemiY: 0.046, Angle: 0},
}

// sheppLoganAmplitudes are the original attenuation values. The skull is 2.0
// and the interior structures differ by as little as 0.01, which is why the
// modified variant below is preferred for display.
var sheppLoganAmplitudes = []float64{2, -0.98, -0.02, -0.02, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01}

// modifiedSheppLoganAmplitudes are Toft's higher-contrast values.
var modifiedSheppLoganAmplitudes = []float64{1, -0.8, -0.2, -0.2, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1}

func withAmplitudes(amps []float64) []Ellipse {
	ellipses := make([]Ellipse, len(sheppLoganGeometry))
	copy(ellipses, sheppLoganGeometry)
	for i := range ellipses {
		ellipses[i].Amplitude = amps[i]
	}
	return ellipses
}

// SheppLogan returns the original Shepp-Logan head phantom.
func SheppLogan() []Ellipse {
	return withAmplitudes(sheppLoganAmplitudes)
}

// ModifiedSheppLogan returns the Shepp-Logan phantom with Toft's
// high-contrast amplitudes.
func ModifiedSheppLogan() []Ellipse {
	return withAmplitudes(modifiedSheppLoganAmplitudes)
}
