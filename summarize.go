package main

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	geo "github.com/paulmach/go.geo"
	"github.com/syndtr/goleveldb/leveldb"
)

// SummaryRow is the per-polygon result: identifier, area in hectares,
// centroid coordinates in degrees and the source file it came from.
// The outer ring is carried along for the viewer and the cache but is
// not part of the CSV output.
type SummaryRow struct {
	PlotID     string
	AreaHa     float64
	Lat        float64
	Lon        float64
	SourceFile string
	Ring       *geo.PointSet
}

// SummarizePlacemark - build the result row for a single polygon:
// area in hectares rounded to 4 decimals, centroid rounded to 6
func SummarizePlacemark(pm Placemark, source string) SummaryRow {
	areaHa := SphericalPolygonArea(pm.Lats, pm.Lons) / 10000.0
	lat, lon := RingCentroid(pm.Lats, pm.Lons)

	return SummaryRow{
		PlotID:     pm.ID,
		AreaHa:     roundTo(areaHa, 4),
		Lat:        roundTo(lat, 6),
		Lon:        roundTo(lon, 6),
		SourceFile: source,
		Ring:       RingPointSet(pm.Lats, pm.Lons),
	}
}

// SummarizeFolder - walk a folder, parse every .kml file and compute one
// row per polygon. Files that fail to parse are skipped with a warning.
// When db is non-nil, per-file results are served from the cache when the
// file is unchanged, and freshly computed results are queued in a batch
// flushed at the end of the walk.
func SummarizeFolder(folder string, db *leveldb.DB) ([]SummaryRow, error) {
	var rows []SummaryRow
	var fileCount int
	batch := new(leveldb.Batch)

	err := filepath.WalkDir(folder, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(path), ".kml") {
			return nil
		}
		fileCount++

		rel, err := filepath.Rel(folder, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		var key []byte
		if db != nil {
			info, err := entry.Info()
			if err != nil {
				return err
			}
			key = fileKey(rel, info)
			if cached, ok := CacheLookupRows(db, key, rel); ok {
				rows = append(rows, cached...)
				return nil
			}
		}

		fileRows, err := summarizeFile(path, rel)
		if err != nil {
			log.Println("[warn] skipping unparsable file:", rel, "error:", err)
			return nil
		}
		rows = append(rows, fileRows...)

		if db != nil {
			CacheQueueRows(batch, key, fileRows)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if db != nil && batch.Len() > 0 {
		CacheFlush(db, batch, true)
	}

	log.Println("summarized", len(rows), "polygons from", fileCount, "files")
	return rows, nil
}

func summarizeFile(path string, rel string) ([]SummaryRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	placemarks, err := ParsePlacemarks(file, filepath.Base(path))
	if err != nil {
		return nil, err
	}

	rows := make([]SummaryRow, 0, len(placemarks))
	for _, pm := range placemarks {
		rows = append(rows, SummarizePlacemark(pm, rel))
	}
	return rows, nil
}
