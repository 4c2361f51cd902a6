// Package bnggrid converts WGS84 longitude/latitude coordinates to British
// National Grid (OSGB36) eastings and northings, at single-point and bulk
// scale.
//
// The conversion applies the seven-parameter Helmert datum shift from WGS84
// to OSGB36 through Earth-centred Cartesian space, then the National Grid
// Transverse Mercator projection. Results are rounded to the nearest metre.
//
//	p := bnggrid.Convert(-0.32824866, 51.44533267)
//	// p.Easting == 516276, p.Northing == 173141
//
// Bulk conversion takes parallel slices and preserves order:
//
//	points, err := bnggrid.ConvertBatch(lons, lats)
//
// ConvertBatchParallel produces bit-identical output using all available
// CPUs. Thread fan-out has a fixed cost per call, so prefer the sequential
// path for batches below roughly DefaultParallelThreshold points.
//
// Every conversion is stateless and total: coordinates outside the UK
// produce numerically well-defined but geographically meaningless grid
// values. Use IsWithinUK to gate input when that matters.
package bnggrid
