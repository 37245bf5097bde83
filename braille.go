package main

import geo "github.com/paulmach/go.geo"

// brailleCanvas rasterizes line work into a grid of braille cells,
// each cell exposing a 2x4 block of micro pixels.
type brailleCanvas struct {
	w, h  int
	cells [][]uint8
}

func newBrailleCanvas(w, h int) *brailleCanvas {
	cells := make([][]uint8, h)
	for i := range cells {
		cells[i] = make([]uint8, w)
	}
	return &brailleCanvas{w: w, h: h, cells: cells}
}

// braille dot numbering: bits 1,2,3,7 run down the left column of a cell
// and 4,5,6,8 down the right
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setDot sets a micro pixel at micro coords (2 wide, 4 tall per cell)
func (c *brailleCanvas) setDot(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= c.w || cy >= c.h {
		return
	}
	c.cells[cy][cx] |= brailleBits[mx%2][my%4]
}

// line draws a micro-pixel line using Bresenham
func (c *brailleCanvas) line(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.setDot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *brailleCanvas) rows() [][]rune {
	out := make([][]rune, c.h)
	for y := 0; y < c.h; y++ {
		row := make([]rune, c.w)
		for x := 0; x < c.w; x++ {
			if mask := c.cells[y][x]; mask != 0 {
				row[x] = rune(0x2800 + int(mask))
			} else {
				row[x] = ' '
			}
		}
		out[y] = row
	}
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// renderRingOutline - rasterize a ring's edges into braille rows fitted
// to the ring's bounding box, with the centroid cell marked
func renderRingOutline(ring *geo.PointSet, centLat, centLon float64, w, h int) []string {
	if ring == nil || ring.Length() == 0 || w < 2 || h < 2 {
		return nil
	}

	minLon, minLat := ring.GetAt(0).Lng(), ring.GetAt(0).Lat()
	maxLon, maxLat := minLon, minLat
	for i := 1; i < ring.Length(); i++ {
		point := ring.GetAt(i)
		minLon = minFloat(minLon, point.Lng())
		maxLon = maxFloat(maxLon, point.Lng())
		minLat = minFloat(minLat, point.Lat())
		maxLat = maxFloat(maxLat, point.Lat())
	}
	// keep degenerate extents projectable
	if maxLon-minLon < 1e-9 {
		minLon, maxLon = minLon-1e-9, maxLon+1e-9
	}
	if maxLat-minLat < 1e-9 {
		minLat, maxLat = minLat-1e-9, maxLat+1e-9
	}

	wMic, hMic := w*2, h*4
	project := func(lon, lat float64) (int, int) {
		nx := (lon - minLon) / (maxLon - minLon)
		ny := (lat - minLat) / (maxLat - minLat)
		return int(nx * float64(wMic-1)), int((1 - ny) * float64(hMic-1))
	}

	canvas := newBrailleCanvas(w, h)
	last := ring.Length() - 1
	for i := 0; i < last; i++ {
		x0, y0 := project(ring.GetAt(i).Lng(), ring.GetAt(i).Lat())
		x1, y1 := project(ring.GetAt(i+1).Lng(), ring.GetAt(i+1).Lat())
		canvas.line(x0, y0, x1, y1)
	}
	if !IsRingClosed(ring) && ring.Length() > 2 {
		x0, y0 := project(ring.GetAt(last).Lng(), ring.GetAt(last).Lat())
		x1, y1 := project(ring.GetAt(0).Lng(), ring.GetAt(0).Lat())
		canvas.line(x0, y0, x1, y1)
	}

	rows := canvas.rows()

	// overlay the centroid marker when it falls inside the viewport
	mx, my := project(centLon, centLat)
	cx, cy := mx/2, my/4
	if cy >= 0 && cy < len(rows) && cx >= 0 && cx < len(rows[cy]) {
		rows[cy][cx] = '◉'
	}

	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = string(row)
	}
	return out
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
