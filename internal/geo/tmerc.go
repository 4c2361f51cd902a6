package geo

import "math"

// National Grid projection constants: true origin at 49°N 2°W, central
// meridian scale factor F0, false origin offset by (E0, N0) metres.
const (
	gridScaleF0     = 0.9996012717
	gridOriginLat   = 49 * math.Pi / 180
	gridOriginLon   = -2 * math.Pi / 180
	gridFalseEast   = 400000.0
	gridFalseNorth  = -100000.0
	meridionalEps   = 1e-5 // metres; inverse arc iteration bound
	maxMeridionalIt = 100
)

// meridionalArc returns the developed meridional arc length M from the true
// origin latitude to lat (radians) on the Airy ellipsoid, scaled by F0.
func meridionalArc(lat float64) float64 {
	n := Airy1830.N()
	n2 := n * n
	n3 := n2 * n

	dLat := lat - gridOriginLat
	sLat := lat + gridOriginLat

	m := (1 + n + 5.0/4.0*n2 + 5.0/4.0*n3) * dLat
	m -= (3*n + 3*n2 + 21.0/8.0*n3) * math.Sin(dLat) * math.Cos(sLat)
	m += (15.0/8.0*n2 + 15.0/8.0*n3) * math.Sin(2*dLat) * math.Cos(2*sLat)
	m -= 35.0 / 24.0 * n3 * math.Sin(3*dLat) * math.Cos(3*sLat)

	return Airy1830.B * gridScaleF0 * m
}

// tmForward projects geodetic lon/lat (radians) on the Airy 1830 ellipsoid
// to National Grid easting/northing in metres, using the closed-form series
// of the OS projection definition.
func tmForward(lon, lat float64) (easting, northing float64) {
	e2 := Airy1830.E2()
	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	tanLat := math.Tan(lat)
	tan2 := tanLat * tanLat
	tan4 := tan2 * tan2

	nu := Airy1830.Nu(lat, gridScaleF0)
	rho := Airy1830.A * gridScaleF0 * (1 - e2) / math.Pow(1-e2*sinLat*sinLat, 1.5)
	eta2 := nu/rho - 1

	m := meridionalArc(lat)

	i := m + gridFalseNorth
	ii := nu / 2 * sinLat * cosLat
	iii := nu / 24 * sinLat * math.Pow(cosLat, 3) * (5 - tan2 + 9*eta2)
	iiia := nu / 720 * sinLat * math.Pow(cosLat, 5) * (61 - 58*tan2 + tan4)
	iv := nu * cosLat
	v := nu / 6 * math.Pow(cosLat, 3) * (nu/rho - tan2)
	vi := nu / 120 * math.Pow(cosLat, 5) * (5 - 18*tan2 + tan4 + 14*eta2 - 58*tan2*eta2)

	dLon := lon - gridOriginLon
	dLon2 := dLon * dLon

	northing = i + ii*dLon2 + iii*dLon2*dLon2 + iiia*dLon2*dLon2*dLon2
	easting = gridFalseEast + iv*dLon + v*dLon*dLon2 + vi*dLon*dLon2*dLon2
	return easting, northing
}

// tmInverse unprojects National Grid easting/northing in metres back to
// geodetic lon/lat (radians) on the Airy 1830 ellipsoid. The footpoint
// latitude is found by iterating the meridional arc until the remainder is
// under a hundredth of a millimetre.
func tmInverse(easting, northing float64) (lon, lat float64) {
	e2 := Airy1830.E2()
	aF0 := Airy1830.A * gridScaleF0

	phi := (northing-gridFalseNorth)/aF0 + gridOriginLat
	for i := 0; i < maxMeridionalIt; i++ {
		m := meridionalArc(phi)
		diff := northing - gridFalseNorth - m
		if math.Abs(diff) < meridionalEps {
			break
		}
		phi += diff / aF0
	}

	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)
	secPhi := 1 / cosPhi
	tanPhi := math.Tan(phi)
	tan2 := tanPhi * tanPhi
	tan4 := tan2 * tan2
	tan6 := tan4 * tan2

	nu := Airy1830.Nu(phi, gridScaleF0)
	rho := Airy1830.A * gridScaleF0 * (1 - e2) / math.Pow(1-e2*sinPhi*sinPhi, 1.5)
	eta2 := nu/rho - 1

	nu3 := nu * nu * nu
	nu5 := nu3 * nu * nu
	nu7 := nu5 * nu * nu

	vii := tanPhi / (2 * rho * nu)
	viii := tanPhi / (24 * rho * nu3) * (5 + 3*tan2 + eta2 - 9*tan2*eta2)
	ix := tanPhi / (720 * rho * nu5) * (61 + 90*tan2 + 45*tan4)
	x := secPhi / nu
	xi := secPhi / (6 * nu3) * (nu/rho + 2*tan2)
	xii := secPhi / (120 * nu5) * (5 + 28*tan2 + 24*tan4)
	xiia := secPhi / (5040 * nu7) * (61 + 662*tan2 + 1320*tan4 + 720*tan6)

	dE := easting - gridFalseEast
	dE2 := dE * dE

	lat = phi - vii*dE2 + viii*dE2*dE2 - ix*dE2*dE2*dE2
	lon = gridOriginLon + x*dE - xi*dE*dE2 + xii*dE*dE2*dE2 - xiia*dE*dE2*dE2*dE2
	return lon, lat
}
