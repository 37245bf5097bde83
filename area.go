package main

import "math"

// EarthRadius - IUGG mean Earth radius in meters
const EarthRadius = 6371008.8

// SphericalPolygonArea - approximate area in square meters of a polygon
// ring given as parallel lat/lon slices in degrees.
//
// The ring is closed if needed, the longitudes are unwrapped across the
// antimeridian and the area follows from the line integral
//
//	0.5 * |Σ (lon2-lon1) * (sin(lat1) + sin(lat2))| * R²
//
// which approximates the enclosed solid angle for polygons small relative
// to the Earth's radius. Winding order does not affect the magnitude.
func SphericalPolygonArea(lats []float64, lons []float64) float64 {
	if len(lats) < 3 {
		return 0
	}

	// close the ring without mutating the caller's slices
	if lats[0] != lats[len(lats)-1] || lons[0] != lons[len(lons)-1] {
		lats = append(append([]float64{}, lats...), lats[0])
		lons = append(append([]float64{}, lons...), lons[0])
	}

	lons = UnwrapLongitudes(lons)

	var total float64
	for i := 0; i+1 < len(lats); i++ {
		lon1, lon2 := radians(lons[i]), radians(lons[i+1])
		lat1, lat2 := radians(lats[i]), radians(lats[i+1])
		total += (lon2 - lon1) * (math.Sin(lat1) + math.Sin(lat2))
	}

	return 0.5 * math.Abs(total) * EarthRadius * EarthRadius
}
