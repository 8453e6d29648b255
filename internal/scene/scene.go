// Package scene turns a simulation frame into renderer-neutral draw requests.
// Frontends only decide how each request becomes pixels or terminal cells.
package scene

import (
	"fmt"
	"strconv"

	"github.com/iburimskiy/times-table/internal/config"
	"github.com/iburimskiy/times-table/internal/geometry"
	"github.com/iburimskiy/times-table/internal/sim"
)

// Role is the colour role of a draw request. Frontends map roles to colours.
type Role int

const (
	RoleBackground Role = iota
	RoleForeground
	RoleText
)

// Text is one status line anchored at its top-left corner.
type Text struct {
	X, Y float64
	S    string
	Role Role
}

// Circle is the boundary outline.
type Circle struct {
	Center geometry.Point
	Radius float64
	Role   Role
}

// Marker is a point on the circle with its index label.
type Marker struct {
	Pos   geometry.Point
	Label string
	Role  Role
}

// Line connects a point to its target.
type Line struct {
	From, To geometry.Point
	Role     Role
}

// Scene is everything drawn for one frame, in draw order.
type Scene struct {
	Clear   Role
	Status  []Text
	Outline Circle
	Markers []Marker
	Lines   []Line
}

// Build assembles the draw requests for f on the circle (center, radius).
func Build(f sim.Frame, center geometry.Point, radius float64) Scene {
	sc := Scene{
		Clear:   RoleBackground,
		Outline: Circle{Center: center, Radius: radius, Role: RoleForeground},
		Markers: make([]Marker, len(f.Points)),
	}

	for i, s := range StatusLines(f.State) {
		sc.Status = append(sc.Status, Text{
			X:    config.StatusX,
			Y:    float64(config.StatusY + i*config.StatusSpacing),
			S:    s,
			Role: RoleText,
		})
	}

	for i, p := range f.Points {
		sc.Markers[i] = Marker{Pos: p, Label: strconv.Itoa(i), Role: RoleForeground}
	}

	if len(f.Points) > 0 {
		edges := f.Edges()
		sc.Lines = make([]Line, len(edges))
		for i, e := range edges {
			sc.Lines[i] = Line{From: f.Points[e.From], To: f.Points[e.To], Role: RoleForeground}
		}
	}
	return sc
}

// StatusLines returns the four status lines shown above the drawing.
func StatusLines(s sim.State) []string {
	help := "Pause with SPACE."
	if s.Paused {
		help = "Paused. Resume with SPACE."
	}
	return []string{
		fmt.Sprintf("Factor: %s (A and D)", s.Factor),
		fmt.Sprintf("Increment: %s (Q and E)", s.Increment),
		fmt.Sprintf("Number of Points: %d (S and W)", s.NumPoints),
		help,
	}
}

// Summary is a single-line description of the parameters, suitable for
// sharing a shape.
func Summary(s sim.State) string {
	return fmt.Sprintf("factor=%s increment=%s points=%d direction=%s",
		s.Factor, s.Increment, s.NumPoints, s.Direction)
}
