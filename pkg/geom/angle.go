package geom

import "math"

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// NormalizeDeg maps any angle in degrees into [0, 360).
func NormalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// NormalizeDeltaRad maps an angle difference into (-pi, pi]. Needed when
// subtracting two atan2 results: a drag crossing the +-180 boundary must
// read as a small delta, not a near-full turn.
func NormalizeDeltaRad(rad float64) float64 {
	for rad > math.Pi {
		rad -= 2 * math.Pi
	}
	for rad <= -math.Pi {
		rad += 2 * math.Pi
	}
	return rad
}

// SnapDeg rounds deg to the nearest multiple of step and normalizes the
// result into [0, 360). A step of zero or less returns deg unchanged.
func SnapDeg(deg, step float64) float64 {
	if step <= 0 {
		return NormalizeDeg(deg)
	}
	return NormalizeDeg(math.Round(deg/step) * step)
}
