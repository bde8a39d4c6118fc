package sim

import "math"

// Angle is a heading in radians, kept within [-Pi, Pi].
type Angle float64

// AngleFromRadians creates a normalized Angle.
func AngleFromRadians(r float64) Angle {
	return Angle(wrapPi(r))
}

// AngleFromDegrees creates a normalized Angle from degrees.
// Use it for headings only, a rate in deg/s must not be wrapped.
func AngleFromDegrees(d float64) Angle {
	return AngleFromRadians(d * math.Pi / 180)
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 { return float64(a) }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 { return float64(a) * 180 / math.Pi }

// Project returns the displacement of travelling dist along the heading.
func (a Angle) Project(dist float64) Pos2D {
	sin, cos := math.Sincos(float64(a))
	return Pos2D{X: dist * cos, Y: dist * sin}
}

func wrapPi(r float64) float64 {
	r = math.Mod(r+math.Pi, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return r - math.Pi
}
