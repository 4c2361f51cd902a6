// Package geo implements the WGS84 → OSGB36 conversion pipeline: a
// seven-parameter Helmert datum shift through Earth-centred Cartesian
// space, followed by the National Grid Transverse Mercator projection.
// All computation is float64 and free of shared state.
package geo

// ToNationalGrid converts a WGS84 longitude/latitude in decimal degrees to
// unrounded National Grid easting/northing in metres.
//
// The function is total: positions outside the OSGB36 domain still produce
// numerically well-defined output, it is just not geographically
// meaningful. Callers that care should gate on IsWithinUK first.
func ToNationalGrid(lon, lat float64) (easting, northing float64) {
	x, y, z := toCartesian(WGS84, DegToRad(lon), DegToRad(lat))
	x, y, z = wgs84ToOSGB36.Apply(x, y, z)
	lonR, latR := toGeodetic(Airy1830, x, y, z)
	return tmForward(lonR, latR)
}

// ToLonLat converts National Grid easting/northing in metres back to a
// WGS84 longitude/latitude in decimal degrees. Round-tripping through
// ToNationalGrid recovers the input to within a few centimetres.
func ToLonLat(easting, northing float64) (lon, lat float64) {
	lonR, latR := tmInverse(easting, northing)
	x, y, z := toCartesian(Airy1830, lonR, latR)
	x, y, z = wgs84ToOSGB36.Inverse().Apply(x, y, z)
	lonR, latR = toGeodetic(WGS84, x, y, z)
	return RadToDeg(lonR), RadToDeg(latR)
}

// UK bounding box for which National Grid output is meaningful.
const (
	minLon = -6.379880
	maxLon = 1.768960
	minLat = 49.871159
	maxLat = 55.811741
)

// IsWithinUK reports whether a lon/lat falls inside the UK bounding box.
// Advisory only; ToNationalGrid never rejects input.
func IsWithinUK(lon, lat float64) bool {
	return lon >= minLon && lon <= maxLon && lat >= minLat && lat <= maxLat
}
