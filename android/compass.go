// Converts parsed gradients to Android splash artifacts: shape
// drawable descriptors and density-bucketed PNG sets.
package android

import "math"

// compassAngles are the eight directions an Android <gradient>
// element accepts.
var compassAngles = [...]int{0, 45, 90, 135, 180, 225, 270, 315}

// CompassAngle maps a CSS angle in degrees to the nearest of the
// eight angles a shape drawable supports. CSS measures clockwise
// from "to top" while Android measures counter-clockwise from
// left-to-right, so the normalized angle is mirrored before
// snapping. Distance is circular (359 is 1 away from 0) and exact
// ties resolve to the numerically lower value.
//
// The mapping is total: any finite input yields one of the eight
// values, and CompassAngle(a) == CompassAngle(a+360).
func CompassAngle(cssDeg float64) int {
	norm := math.Mod(cssDeg, 360)
	if norm < 0 {
		norm += 360
	}
	target := math.Mod(360-norm, 360)

	best, bestDist := compassAngles[0], math.MaxFloat64
	for _, c := range compassAngles {
		d := math.Abs(target - float64(c))
		if d > 180 {
			d = 360 - d
		}
		// strict less keeps the lower candidate on ties
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
