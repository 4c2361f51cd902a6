package bnggrid

import (
	"errors"
	"math"

	"github.com/kailas-cloud/bnggrid/internal/geo"
)

// ErrLengthMismatch signals that the longitude and latitude slices given to
// a batch conversion differ in length. No computation happens in that case.
var ErrLengthMismatch = errors.New("longitude and latitude slices differ in length")

// GridPoint is a British National Grid position in whole metres from the
// false origin. Values are meaningful inside easting [0, 700000] and
// northing [0, 1300000]; out-of-domain input yields values outside that
// range.
type GridPoint struct {
	Easting  int32 `json:"easting"`
	Northing int32 `json:"northing"`
}

// Convert maps one WGS84 longitude/latitude in decimal degrees to a
// National Grid point, rounded to the nearest metre with halves away from
// zero. Deterministic and stateless; never fails.
func Convert(lon, lat float64) GridPoint {
	e, n := geo.ToNationalGrid(lon, lat)
	return GridPoint{
		Easting:  int32(math.Round(e)),
		Northing: int32(math.Round(n)),
	}
}

// Inverse maps a National Grid easting/northing in metres back to WGS84
// longitude/latitude in decimal degrees, within a few centimetres of the
// original position.
func Inverse(easting, northing float64) (lon, lat float64) {
	return geo.ToLonLat(easting, northing)
}

// IsWithinUK reports whether a lon/lat falls inside the UK bounding box
// for which grid output is geographically meaningful.
func IsWithinUK(lon, lat float64) bool {
	return geo.IsWithinUK(lon, lat)
}

// ConvertBatch converts parallel slices of longitudes and latitudes into a
// freshly allocated slice of grid points, index-aligned with the input.
// The input slices are only read, and never retained past the call.
func ConvertBatch(lons, lats []float64) ([]GridPoint, error) {
	if len(lons) != len(lats) {
		return nil, ErrLengthMismatch
	}
	out := make([]GridPoint, len(lons))
	for i := range lons {
		out[i] = Convert(lons[i], lats[i])
	}
	return out, nil
}
