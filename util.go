package main

import (
	geo "github.com/paulmach/go.geo"
	"math"
)

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func roundTo(val float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(val*pow) / pow
}

// RingPointSet - build a go.geo point set from parallel lat/lon slices
func RingPointSet(lats []float64, lons []float64) *geo.PointSet {
	points := geo.NewPointSet()
	for i := range lats {
		points.Push(geo.NewPoint(lons[i], lats[i]))
	}
	return points
}

func IsRingClosed(points *geo.PointSet) bool {
	if points.Length() > 2 {
		return points.First().Equals(points.Last())
	}
	return false
}

// RingPerimeter - total geodesic edge length of a ring in meters,
// including the closing edge when the ring is left open
func RingPerimeter(points *geo.PointSet) float64 {
	path := geo.NewPath()
	path.PointSet = *points

	total := path.Distance()
	if points.Length() > 2 && !IsRingClosed(points) {
		closing := geo.NewLine(points.Last(), points.First())
		total += closing.Distance()
	}
	return total
}
