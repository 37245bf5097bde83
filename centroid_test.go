package main

import (
	"testing"

	geo "github.com/paulmach/go.geo"
	"github.com/stretchr/testify/assert"
)

func TestCentroidSymmetricRing(t *testing.T) {

	var lats = []float64{1, -1, -1, 1}
	var lons = []float64{1, 1, -1, -1}

	lat, lon := RingCentroid(lats, lons)
	assert.InDelta(t, 0, lat, 1e-9)
	assert.InDelta(t, 0, lon, 1e-9)
}

func TestCentroidEmptyInput(t *testing.T) {
	lat, lon := RingCentroid(nil, nil)
	assert.Equal(t, 0.0, lat)
	assert.Equal(t, 0.0, lon)
}

func TestCentroidSingleVertex(t *testing.T) {
	lat, lon := RingCentroid([]float64{-33.85}, []float64{151.21})
	assert.InDelta(t, -33.85, lat, 1e-9)
	assert.InDelta(t, 151.21, lon, 1e-9)
}

func TestCentroidClosingVertexIncluded(t *testing.T) {

	// the duplicated closing vertex is averaged as given, pulling the
	// centroid of this square toward the repeated corner at (1, 1)
	var lats = []float64{1, -1, -1, 1, 1}
	var lons = []float64{1, 1, -1, -1, 1}

	lat, lon := RingCentroid(lats, lons)
	assert.InDelta(t, 0.2, lat, 1e-3)
	assert.InDelta(t, 0.2, lon, 1e-3)
}

// http://www.openstreetmap.org/way/264768896
func TestCentroidMatchesGeoCentroid(t *testing.T) {

	var lats = []float64{
		40.740760, 40.740762, 40.740763, 40.740864, 40.740867,
		40.740874, 40.740882, 40.740891, 40.740899, 40.740907,
		40.741288, 40.741294, 40.741298, 40.741300, 40.741300,
		40.741299, 40.741297, 40.741293, 40.741290, 40.741283,
		40.741265, 40.740776, 40.740770, 40.740765, 40.740761,
		40.740760, 40.740760,
	}
	var lons = []float64{
		-73.989605, -73.989615, -73.989619, -73.989855, -73.989859,
		-73.989866, -73.989870, -73.989872, -73.989870, -73.989865,
		-73.989584, -73.989575, -73.989564, -73.989559, -73.989547,
		-73.989535, -73.989529, -73.989519, -73.989514, -73.989507,
		-73.989501, -73.989570, -73.989575, -73.989581, -73.989590,
		-73.989595, -73.989605,
	}

	lat, lon := RingCentroid(lats, lons)

	var points = geo.NewPointSet()
	for i := range lats {
		points.Push(geo.NewPoint(lons[i], lats[i]))
	}
	var reference = points.GeoCentroid()

	assert.InDelta(t, reference.Lat(), lat, 1e-4)
	assert.InDelta(t, reference.Lng(), lon, 1e-4)
}
