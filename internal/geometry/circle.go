package geometry

import (
	"fmt"
	"math"
)

// Point is a position in window pixels.
type Point struct {
	X, Y float64
}

// Edge connects point From to point To, both indices into a point set.
type Edge struct {
	From, To int
}

// Generate places n points on a circle. Point i sits at angle π + 2πi/n, so
// point 0 is the leftmost point and indices run clockwise on screen (y down).
// Each angle is computed from its index directly.
func Generate(n int, center Point, radius float64) []Point {
	if n <= 0 {
		return []Point{}
	}
	points := make([]Point, n)
	for i := range points {
		theta := math.Pi + 2*math.Pi*(float64(i)/float64(n))
		points[i] = Point{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		}
	}
	return points
}

// TargetIndex returns the index point n connects to: round(n*factor) mod
// numPoints, always in [0, numPoints). numPoints must be positive.
func TargetIndex(n int, factor float64, numPoints int) int {
	if numPoints <= 0 {
		panic(fmt.Sprintf("geometry: TargetIndex with numPoints=%d", numPoints))
	}
	t := math.Mod(math.Round(float64(n)*factor), float64(numPoints))
	if t < 0 {
		t += float64(numPoints)
	}
	idx := int(t)
	// NaN or ±Inf factors collapse to 0.
	if idx < 0 || idx >= numPoints {
		return 0
	}
	return idx
}

// Edges derives one edge per point for the given factor.
func Edges(numPoints int, factor float64) []Edge {
	if numPoints <= 0 {
		return nil
	}
	edges := make([]Edge, numPoints)
	for n := range edges {
		edges[n] = Edge{From: n, To: TargetIndex(n, factor, numPoints)}
	}
	return edges
}
