package main

import "math"

// RingCentroid - approximate centroid of a ring given as parallel lat/lon
// slices in degrees, computed by averaging unit-sphere cartesian
// coordinates of the vertices and converting the mean vector back.
//
// This is the vertex average, not the area-weighted centroid of the
// polygon interior. A duplicated closing vertex is included as given.
func RingCentroid(lats []float64, lons []float64) (float64, float64) {
	if len(lats) == 0 {
		return 0, 0
	}

	var x, y, z float64
	for i := range lats {
		lat, lon := radians(lats[i]), radians(lons[i])
		x += math.Cos(lat) * math.Cos(lon)
		y += math.Cos(lat) * math.Sin(lon)
		z += math.Sin(lat)
	}

	n := float64(len(lats))
	x /= n
	y /= n
	z /= n

	lat := degrees(math.Atan2(z, math.Hypot(x, y)))
	lon := degrees(math.Atan2(y, x))
	return lat, lon
}
