package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/times-table/internal/scene"
)

const (
	lineRune    = '·'
	outlineRune = '.'
	markerRune  = 'o'
	statusRows  = 4
)

// cellWriter is the part of tcell.Screen the renderer draws through.
type cellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// Renderer draws a scene onto a terminal.
type Renderer struct {
	out    cellWriter
	styles map[scene.Role]tcell.Style
}

func NewRenderer(out cellWriter) *Renderer {
	return &Renderer{
		out: out,
		styles: map[scene.Role]tcell.Style{
			scene.RoleBackground: tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack),
			scene.RoleForeground: tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack),
			scene.RoleText:       tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack).Bold(true),
		},
	}
}

// Draw paints sc. Status text is drawn last so it stays readable; marker
// labels are skipped where they would overlap an earlier label.
func (r *Renderer) Draw(sc scene.Scene) {
	cols, rows := r.out.Size()
	grid := NewGrid(cols, rows, statusRows)

	bg := r.styles[sc.Clear]
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r.out.SetContent(x, y, ' ', nil, bg)
		}
	}

	put := func(ch rune, style tcell.Style) func(x, y int) {
		return func(x, y int) {
			if x >= 0 && x < cols && y >= 0 && y < rows {
				r.out.SetContent(x, y, ch, nil, style)
			}
		}
	}

	if !grid.Empty() {
		for _, l := range sc.Lines {
			x0, y0 := grid.Cell(l.From)
			x1, y1 := grid.Cell(l.To)
			plotLine(x0, y0, x1, y1, put(lineRune, r.styles[l.Role]))
		}
		plotCircle(grid, sc.Outline.Center, sc.Outline.Radius, put(outlineRune, r.styles[sc.Outline.Role]))

		labelled := make(map[[2]int]bool)
		for _, m := range sc.Markers {
			x, y := grid.Cell(m.Pos)
			style := r.styles[m.Role]
			put(markerRune, style)(x, y)
			r.label(x+1, y, m.Label, style, labelled, cols, rows)
		}
	}

	for i, t := range sc.Status {
		if i >= rows {
			break
		}
		r.text(0, i, t.S, r.styles[t.Role], cols)
	}
}

func (r *Renderer) label(x, y int, s string, style tcell.Style, taken map[[2]int]bool, cols, rows int) {
	if y < 0 || y >= rows || x < 0 || x+len(s) > cols {
		return
	}
	// One blank cell on either side keeps neighbouring labels apart.
	for i := -1; i <= len(s); i++ {
		if taken[[2]int{x + i, y}] {
			return
		}
	}
	for i, ch := range s {
		taken[[2]int{x + i, y}] = true
		r.out.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style, cols int) {
	for _, ch := range s {
		if x >= cols {
			return
		}
		r.out.SetContent(x, y, ch, nil, style)
		x++
	}
}
