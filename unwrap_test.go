package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrapSingleLongitude(t *testing.T) {
	assert.Equal(t, []float64{42.5}, UnwrapLongitudes([]float64{42.5}))
}

func TestUnwrapPlainSequenceUnchanged(t *testing.T) {
	var lons = []float64{10, 11.5, 12, 11, 10}
	assert.Equal(t, lons, UnwrapLongitudes(lons))
}

func TestUnwrapAcrossAntimeridian(t *testing.T) {
	var lons = []float64{179, -179, -179, 179}
	var unwrapped = UnwrapLongitudes(lons)

	// no jump larger than 180 remains
	assert.Equal(t, []float64{179, 181, 181, 179}, unwrapped)

	// the anchor is the original first element, exactly
	assert.Equal(t, lons[0], unwrapped[0])
}

func TestUnwrapWestwardCrossing(t *testing.T) {
	var lons = []float64{-179, 179, 179, -179}
	assert.Equal(t, []float64{-179, -181, -181, -179}, UnwrapLongitudes(lons))
}

func TestUnwrapIdempotent(t *testing.T) {
	var lons = []float64{178, 179.5, -179.5, -178, 179}
	var once = UnwrapLongitudes(lons)
	assert.Equal(t, once, UnwrapLongitudes(once))
}

func TestUnwrapDoesNotMutateInput(t *testing.T) {
	var lons = []float64{179, -179}
	UnwrapLongitudes(lons)
	assert.Equal(t, []float64{179, -179}, lons)
}
