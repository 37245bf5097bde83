package main

import (
	"encoding/binary"
	"errors"
	"math"

	geo "github.com/paulmach/go.geo"
)

// rows for one source file are encoded into a single cache value:
// a uint32 row count, then per row a length-prefixed plot id, the
// area/lat/lon as big-endian float64 bit patterns, and the ring as a
// uint32 point count followed by lat/lon pairs. The source path lives
// in the cache key and is re-attached on decode.

var errTruncatedValue = errors.New("truncated cache value")

func rowsToBytes(rows []SummaryRow) []byte {
	size := 4
	for _, row := range rows {
		size += 4 + len(row.PlotID) + 3*8 + 4 + row.Ring.Length()*16
	}

	buf := make([]byte, 0, size)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(rows)))
	for _, row := range rows {
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(row.PlotID)))
		buf = append(buf, row.PlotID...)
		buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(row.AreaHa))
		buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(row.Lat))
		buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(row.Lon))
		buf = binary.BigEndian.AppendUint32(buf, uint32(row.Ring.Length()))
		for i := 0; i < row.Ring.Length(); i++ {
			point := row.Ring.GetAt(i)
			buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(point.Lat()))
			buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(point.Lng()))
		}
	}
	return buf
}

func bytesToRows(data []byte, source string) ([]SummaryRow, error) {
	r := valueReader{data: data}

	count, err := r.uint32()
	if err != nil {
		return nil, err
	}

	rows := make([]SummaryRow, 0, count)
	for n := uint32(0); n < count; n++ {
		var row SummaryRow

		if row.PlotID, err = r.str(); err != nil {
			return nil, err
		}
		if row.AreaHa, err = r.float64(); err != nil {
			return nil, err
		}
		if row.Lat, err = r.float64(); err != nil {
			return nil, err
		}
		if row.Lon, err = r.float64(); err != nil {
			return nil, err
		}

		points, err := r.uint32()
		if err != nil {
			return nil, err
		}
		ring := geo.NewPointSet()
		for i := uint32(0); i < points; i++ {
			lat, err := r.float64()
			if err != nil {
				return nil, err
			}
			lon, err := r.float64()
			if err != nil {
				return nil, err
			}
			ring.Push(geo.NewPoint(lon, lat))
		}

		row.SourceFile = source
		row.Ring = ring
		rows = append(rows, row)
	}

	if r.off != len(r.data) {
		return nil, errors.New("trailing bytes in cache value")
	}
	return rows, nil
}

type valueReader struct {
	data []byte
	off  int
}

func (r *valueReader) take(n int) ([]byte, error) {
	if r.off+n > len(r.data) {
		return nil, errTruncatedValue
	}
	chunk := r.data[r.off : r.off+n]
	r.off += n
	return chunk, nil
}

func (r *valueReader) uint32() (uint32, error) {
	chunk, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(chunk), nil
}

func (r *valueReader) float64() (float64, error) {
	chunk, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(chunk)), nil
}

func (r *valueReader) str() (string, error) {
	n, err := r.uint32()
	if err != nil {
		return "", err
	}
	chunk, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	return string(chunk), nil
}
