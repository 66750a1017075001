// Package projection converts between cylindrical and spherical
// parameterizations of view directions from a shared origin, and remaps
// whole images from the cylindrical model to the spherical one.
//
// Coordinate convention: the cylinder axis is vertical and the fovea — the
// point on the cylinder surface diametrically opposite the camera aperture —
// is the origin of both coordinate systems.
package projection

import "math"

// DefaultCoverage is substituted when a remap caller passes a coverage
// outside (0, 1]. The file driver relies on the same fallback, so both
// layers agree by construction.
const DefaultCoverage = 0.9

// CylToSph converts cylindrical image coordinates to spherical view angles.
//
// x is horizontal arc length around the cylinder from the fovea, y is
// vertical distance along the cylinder axis from the fovea, and d is the
// cylinder diameter in the same units as x and y. Returns azimuth theta and
// elevation phi in radians.
//
// The mapping is singular where cos(theta) = 0, i.e. |theta| = pi/2: phi
// degenerates to whatever IEEE-754 produces. This is not guarded; callers
// must tolerate or avoid it.
func CylToSph(x, y, d float64) (theta, phi float64) {
	theta = x / d
	phi = math.Atan(y / math.Cos(theta) / d)
	return theta, phi
}

// SphToCyl converts spherical view angles back to cylindrical image
// coordinates. It is the exact algebraic inverse of CylToSph for theta and
// phi in (-pi/2, pi/2), though the model as a whole is only an approximation
// of true lens geometry.
//
// y diverges as phi approaches ±pi/2 (tan blow-up). Like CylToSph, this is
// documented rather than guarded.
func SphToCyl(theta, phi, d float64) (x, y float64) {
	x = d * theta
	y = d * math.Tan(phi) * math.Cos(theta)
	return x, y
}
