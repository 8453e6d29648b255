package geometry

import (
	"math"
	"testing"
)

const eps = 1e-9

func angleOf(p, c Point) float64 {
	return math.Atan2(p.Y-c.Y, p.X-c.X)
}

func TestGenerate_CountAndRadius(t *testing.T) {
	c := Point{X: 500, Y: 500}
	for _, n := range []int{1, 5, 7, 200, 1000} {
		pts := Generate(n, c, 100)
		if len(pts) != n {
			t.Fatalf("n=%d: got %d points", n, len(pts))
		}
		for i, p := range pts {
			if d := math.Hypot(p.X-c.X, p.Y-c.Y); math.Abs(d-100) > eps {
				t.Fatalf("n=%d point %d at distance %v", n, i, d)
			}
		}
	}
}

func TestGenerate_FirstPointIsLeftmost(t *testing.T) {
	pts := Generate(4, Point{X: 10, Y: 20}, 5)
	if math.Abs(pts[0].X-5) > eps || math.Abs(pts[0].Y-20) > eps {
		t.Fatalf("point 0 = %+v, want (5, 20)", pts[0])
	}
	// Screen y grows downward, so a quarter turn lands above the centre.
	if math.Abs(pts[1].X-10) > eps || math.Abs(pts[1].Y-15) > eps {
		t.Fatalf("point 1 = %+v, want (10, 15)", pts[1])
	}
}

func TestGenerate_EvenSpacingNoDrift(t *testing.T) {
	c := Point{}
	n := 997
	pts := Generate(n, c, 1)
	step := 2 * math.Pi / float64(n)
	for i := range pts {
		want := math.Pi + step*float64(i)
		got := angleOf(pts[i], c)
		diff := math.Remainder(got-want, 2*math.Pi)
		if math.Abs(diff) > 1e-9 {
			t.Fatalf("point %d angle off by %v", i, diff)
		}
	}
	// Distinct positions.
	seen := make(map[[2]int64]bool, n)
	for _, p := range pts {
		k := [2]int64{int64(math.Round(p.X * 1e9)), int64(math.Round(p.Y * 1e9))}
		if seen[k] {
			t.Fatalf("duplicate point %+v", p)
		}
		seen[k] = true
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(123, Point{X: 1, Y: 2}, 3)
	_ = Generate(50, Point{}, 1)
	b := Generate(123, Point{X: 1, Y: 2}, 3)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs between calls: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerate_ZeroIsEmpty(t *testing.T) {
	if pts := Generate(0, Point{}, 1); len(pts) != 0 {
		t.Fatalf("expected empty slice, got %d points", len(pts))
	}
}

func TestTargetIndex(t *testing.T) {
	cases := []struct {
		n      int
		factor float64
		num    int
		want   int
	}{
		{n: 3, factor: 2, num: 10, want: 6},
		{n: 7, factor: 2, num: 10, want: 4},
		{n: 3, factor: -0.5, num: 10, want: 8},
		{n: 9, factor: -3, num: 10, want: 3},
		{n: 1, factor: 2.5, num: 10, want: 3},
		{n: 0, factor: 123.4, num: 10, want: 0},
		{n: 199, factor: 2.01, num: 200, want: 0},
	}
	for _, tc := range cases {
		if got := TargetIndex(tc.n, tc.factor, tc.num); got != tc.want {
			t.Errorf("TargetIndex(%d, %v, %d) = %d, want %d", tc.n, tc.factor, tc.num, got, tc.want)
		}
	}
}

func TestTargetIndex_AlwaysInRange(t *testing.T) {
	for _, num := range []int{5, 10, 200} {
		for _, f := range []float64{-1000.37, -2.5, -0.01, 0, 0.5, 2, 99.99, math.Inf(1), math.NaN()} {
			for n := 0; n < num; n++ {
				idx := TargetIndex(n, f, num)
				if idx < 0 || idx >= num {
					t.Fatalf("TargetIndex(%d, %v, %d) = %d out of range", n, f, num, idx)
				}
			}
		}
	}
}

func TestTargetIndex_ZeroPointsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for numPoints=0")
		}
	}()
	TargetIndex(1, 2, 0)
}

func TestEdges(t *testing.T) {
	edges := Edges(10, 2)
	if len(edges) != 10 {
		t.Fatalf("got %d edges", len(edges))
	}
	for n, e := range edges {
		if e.From != n || e.To != (2*n)%10 {
			t.Errorf("edge %d = %+v", n, e)
		}
	}
	if Edges(0, 2) != nil {
		t.Error("expected nil edges for zero points")
	}
}
