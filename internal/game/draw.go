package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/times-table/internal/config"
	"github.com/iburimskiy/times-table/internal/scene"
)

var (
	backgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	foregroundColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	textColor       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

func roleColor(r scene.Role) color.Color {
	switch r {
	case scene.RoleBackground:
		return backgroundColor
	case scene.RoleText:
		return textColor
	default:
		return foregroundColor
	}
}

func (g *Game) drawScene(screen *ebiten.Image, sc scene.Scene) {
	screen.Fill(roleColor(sc.Clear))

	for _, t := range sc.Status {
		g.drawText(screen, t.S, t.X, t.Y, roleColor(t.Role))
	}

	o := sc.Outline
	vector.StrokeCircle(screen, float32(o.Center.X), float32(o.Center.Y), float32(o.Radius),
		config.OutlineWidth, roleColor(o.Role), true)

	for _, m := range sc.Markers {
		clr := roleColor(m.Role)
		vector.DrawFilledCircle(screen, float32(m.Pos.X), float32(m.Pos.Y), config.MarkerRadius, clr, true)
		g.drawText(screen, m.Label, m.Pos.X, m.Pos.Y, clr)
	}

	for _, l := range sc.Lines {
		vector.StrokeLine(screen, float32(l.From.X), float32(l.From.Y), float32(l.To.X), float32(l.To.Y),
			config.EdgeWidth, roleColor(l.Role), true)
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.face, op)
}
