package geo

import "math"

// Ellipsoid is a reference ellipsoid defined by its semi-major and
// semi-minor axes in metres. All derived quantities are pure functions
// of these two values.
type Ellipsoid struct {
	A float64 // semi-major axis
	B float64 // semi-minor axis
}

// Reference ellipsoids for the supported datum pair.
var (
	// Airy1830 underlies the OSGB36 datum and the National Grid.
	Airy1830 = Ellipsoid{A: 6377563.396, B: 6356256.909}
	// WGS84 underlies GPS longitude/latitude.
	WGS84 = Ellipsoid{A: 6378137.000, B: 6356752.3141}
)

// E2 returns the first eccentricity squared, (a²−b²)/a².
func (e Ellipsoid) E2() float64 {
	return (e.A*e.A - e.B*e.B) / (e.A * e.A)
}

// N returns Helmert's n, (a−b)/(a+b), used by the meridional arc series.
func (e Ellipsoid) N() float64 {
	return (e.A - e.B) / (e.A + e.B)
}

// Nu returns the transverse radius of curvature at geodetic latitude
// lat (radians), scaled by the factor f.
func (e Ellipsoid) Nu(lat, f float64) float64 {
	sinLat := math.Sin(lat)
	return e.A * f / math.Sqrt(1-e.E2()*sinLat*sinLat)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
