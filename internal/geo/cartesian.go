package geo

import "math"

// geodeticEps is the convergence bound for the iterative latitude solver,
// in radians. 1e-12 rad is well under a tenth of a millimetre on the ground.
const geodeticEps = 1e-12

// toCartesian converts geodetic lon/lat (radians, height zero) on the given
// ellipsoid to Earth-centred Cartesian coordinates in metres.
func toCartesian(e Ellipsoid, lon, lat float64) (x, y, z float64) {
	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	nu := e.A / math.Sqrt(1-e.E2()*sinLat*sinLat)

	x = nu * cosLat * math.Cos(lon)
	y = nu * cosLat * math.Sin(lon)
	z = (1 - e.E2()) * nu * sinLat
	return x, y, z
}

// toGeodetic converts Earth-centred Cartesian coordinates back to geodetic
// lon/lat (radians) on the given ellipsoid, solving for latitude
// iteratively. Convergence is quadratic; a handful of iterations reach
// geodeticEps anywhere on the ellipsoid surface.
func toGeodetic(e Ellipsoid, x, y, z float64) (lon, lat float64) {
	e2 := e.E2()
	p := math.Hypot(x, y)

	lon = math.Atan2(y, x)
	lat = math.Atan2(z, p*(1-e2))
	for i := 0; i < 30; i++ {
		sinLat := math.Sin(lat)
		nu := e.A / math.Sqrt(1-e2*sinLat*sinLat)
		next := math.Atan2(z+e2*nu*sinLat, p)
		if math.Abs(next-lat) < geodeticEps {
			lat = next
			break
		}
		lat = next
	}
	return lon, lat
}
