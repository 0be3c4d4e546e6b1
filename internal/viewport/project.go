package viewport

import (
	"math"

	"github.com/abhisek/squelette/internal/anatomy"
)

// Point is a cell in the viewport grid.
type Point struct {
	Col, Row int
}

const margin = 1

// Project maps anchors onto a width x height grid with an orthographic
// front view. The model's vertical axis is centered horizontally. Anchors
// that land on the same cell are nudged right until they are distinct.
func Project(anchors []anatomy.Anchor, width, height int) map[string]Point {
	out := make(map[string]Point, len(anchors))
	if len(anchors) == 0 || width <= 2*margin || height <= 2*margin {
		return out
	}

	xr := 0.0
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, a := range anchors {
		xr = math.Max(xr, math.Abs(a.Position.X))
		minY = math.Min(minY, a.Position.Y)
		maxY = math.Max(maxY, a.Position.Y)
	}
	if xr == 0 {
		xr = 1
	}
	spanY := maxY - minY
	if spanY == 0 {
		spanY = 1
	}

	cols := width - 1 - 2*margin
	rows := height - 1 - 2*margin
	taken := make(map[Point]bool, len(anchors))
	for _, a := range anchors {
		p := Point{
			Col: margin + int(math.Round((a.Position.X+xr)/(2*xr)*float64(cols))),
			Row: margin + int(math.Round((maxY-a.Position.Y)/spanY*float64(rows))),
		}
		for taken[p] && p.Col < width-1 {
			p.Col++
		}
		taken[p] = true
		out[a.ID] = p
	}
	return out
}

// line returns the cells between a and b, endpoints excluded.
func line(a, b Point) []Point {
	var pts []Point
	dx := abs(b.Col - a.Col)
	dy := -abs(b.Row - a.Row)
	sx, sy := 1, 1
	if a.Col > b.Col {
		sx = -1
	}
	if a.Row > b.Row {
		sy = -1
	}
	err := dx + dy
	p := a
	for p != b {
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			p.Col += sx
		}
		if e2 <= dx {
			err += dx
			p.Row += sy
		}
		if p != b {
			pts = append(pts, p)
		}
	}
	return pts
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
