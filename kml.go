package main

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// Placemark is one polygon extracted from a KML file: the placemark name
// and its outer boundary ring as parallel lat/lon slices in degrees.
type Placemark struct {
	ID   string
	Lats []float64
	Lons []float64
}

type kmlLinearRing struct {
	Coordinates string `xml:"coordinates"`
}

type kmlBoundary struct {
	LinearRing kmlLinearRing `xml:"LinearRing"`
}

type kmlPolygon struct {
	OuterBoundary kmlBoundary `xml:"outerBoundaryIs"`
}

type kmlPlacemark struct {
	Name          string      `xml:"name"`
	Polygon       *kmlPolygon `xml:"Polygon"`
	MultiGeometry *struct {
		Polygons []kmlPolygon `xml:"Polygon"`
	} `xml:"MultiGeometry"`
}

// kmlContainer matches <kml>, <Document> and <Folder> alike; placemarks
// are collected recursively since real exports bury them in folders.
type kmlContainer struct {
	Placemarks []kmlPlacemark `xml:"Placemark"`
	Documents  []kmlContainer `xml:"Document"`
	Folders    []kmlContainer `xml:"Folder"`
}

// ParsePlacemarks extracts polygon placemarks from a KML document.
// The outer boundary ring comes from Polygon > outerBoundaryIs >
// LinearRing > coordinates; inner boundaries (holes) are ignored.
// Placemarks without a polygon, or with fewer than 3 parsable vertices,
// are dropped. fallbackID names placemarks that carry no <name>.
func ParsePlacemarks(reader io.Reader, fallbackID string) ([]Placemark, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	var root kmlContainer
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	var placemarks []Placemark
	collectPlacemarks(&root, fallbackID, &placemarks)
	return placemarks, nil
}

func collectPlacemarks(container *kmlContainer, fallbackID string, out *[]Placemark) {
	for _, pm := range container.Placemarks {
		polygon := pm.Polygon
		if polygon == nil && pm.MultiGeometry != nil && len(pm.MultiGeometry.Polygons) > 0 {
			polygon = &pm.MultiGeometry.Polygons[0]
		}
		if polygon == nil {
			continue
		}

		lats, lons := parseCoordinates(polygon.OuterBoundary.LinearRing.Coordinates)
		if len(lats) < 3 {
			continue
		}

		id := strings.TrimSpace(pm.Name)
		if id == "" {
			id = fallbackID
		}
		*out = append(*out, Placemark{ID: id, Lats: lats, Lons: lons})
	}

	for i := range container.Documents {
		collectPlacemarks(&container.Documents[i], fallbackID, out)
	}
	for i := range container.Folders {
		collectPlacemarks(&container.Folders[i], fallbackID, out)
	}
}

// parseCoordinates splits a KML coordinate block into parallel lat/lon
// slices. Tuples are "lon,lat[,alt]" separated by whitespace; altitude is
// ignored and unparsable tuples are skipped.
func parseCoordinates(block string) (lats []float64, lons []float64) {
	for _, tuple := range strings.Fields(block) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		lats = append(lats, lat)
		lons = append(lons, lon)
	}
	return lats, lons
}
