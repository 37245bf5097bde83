package main

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{"Plot_ID", "Area_ha", "Latitude", "Longitude", "Source_File"}

// WriteCSV - serialize summary rows as UTF-8 CSV with a header row,
// area formatted with 4 decimals and coordinates with 6
func WriteCSV(writer io.Writer, rows []SummaryRow) error {
	out := csv.NewWriter(writer)

	if err := out.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.PlotID,
			strconv.FormatFloat(row.AreaHa, 'f', 4, 64),
			strconv.FormatFloat(row.Lat, 'f', 6, 64),
			strconv.FormatFloat(row.Lon, 'f', 6, 64),
			row.SourceFile,
		}
		if err := out.Write(record); err != nil {
			return err
		}
	}

	out.Flush()
	return out.Error()
}
