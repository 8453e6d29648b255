package term

import (
	"math"

	"github.com/iburimskiy/times-table/internal/config"
	"github.com/iburimskiy/times-table/internal/geometry"
)

// Grid maps window coordinates onto a block of terminal cells. Cells are
// about twice as tall as they are wide, so the block is twice as wide as it
// is tall to keep the circle round.
type Grid struct {
	OffX, OffY int
	W, H       int
}

// NewGrid fits the drawing into cols x rows, leaving the top reserved rows
// for status text.
func NewGrid(cols, rows, reserved int) Grid {
	avail := rows - reserved
	if avail <= 0 || cols <= 0 {
		return Grid{OffY: reserved}
	}
	w := cols
	if 2*avail < w {
		w = 2 * avail
	}
	h := w / 2
	return Grid{
		OffX: (cols - w) / 2,
		OffY: reserved + (avail-h)/2,
		W:    w,
		H:    h,
	}
}

// Empty reports whether nothing fits on the grid.
func (g Grid) Empty() bool {
	return g.W <= 0 || g.H <= 0
}

// Cell returns the cell holding p.
func (g Grid) Cell(p geometry.Point) (int, int) {
	x := g.OffX + int(math.Round(p.X/config.WindowWidth*float64(g.W-1)))
	y := g.OffY + int(math.Round(p.Y/config.WindowHeight*float64(g.H-1)))
	return x, y
}

// plotLine visits every cell on the segment (x0,y0)-(x1,y1), endpoints
// included.
func plotLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// plotCircle visits the cells under a circle given in window coordinates.
func plotCircle(g Grid, center geometry.Point, radius float64, plot func(x, y int)) {
	if g.Empty() {
		return
	}
	steps := 4 * (g.W + g.H)
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x, y := g.Cell(geometry.Point{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		})
		plot(x, y)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
