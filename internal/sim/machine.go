package sim

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iburimskiy/times-table/internal/geometry"
)

// Frame is what one tick hands to a renderer.
type Frame struct {
	State  State
	Points []geometry.Point
	Transition
}

// Edges derives the lines to draw for this frame.
func (f Frame) Edges() []geometry.Edge {
	return geometry.Edges(len(f.Points), f.State.FactorFloat())
}

// LandedOnInteger reports whether this tick moved the factor onto a whole number.
func (f Frame) LandedOnInteger() bool {
	return f.Advanced && f.State.Factor.IsInteger()
}

// Machine owns the evolving State and the point set derived from it. It is
// not safe for concurrent use; one frame loop drives it.
type Machine struct {
	initial State
	state   State
	points  []geometry.Point
	center  geometry.Point
	radius  float64
}

// NewMachine starts a machine at initial, laying points out on the circle
// (center, radius).
func NewMachine(initial State, center geometry.Point, radius float64) *Machine {
	if initial.NumPoints <= 0 {
		panic(fmt.Sprintf("sim: NewMachine with NumPoints=%d", initial.NumPoints))
	}
	m := &Machine{
		initial: initial,
		state:   initial,
		center:  center,
		radius:  radius,
	}
	m.regenerate()
	return m
}

func (m *Machine) regenerate() {
	m.points = geometry.Generate(m.state.NumPoints, m.center, m.radius)
}

// Step advances one tick.
func (m *Machine) Step(in Input) Frame {
	next, tr := Next(m.state, in)
	m.state = next
	if tr.PointsChanged {
		m.regenerate()
	}
	return m.Frame(tr)
}

// Frame returns the current state and points, tagged with tr.
func (m *Machine) Frame(tr Transition) Frame {
	return Frame{State: m.state, Points: m.points, Transition: tr}
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	return m.state
}

// Points returns the current point set. Callers must not modify it.
func (m *Machine) Points() []geometry.Point {
	return m.points
}

// SetFactor jumps the factor to f without touching anything else.
func (m *Machine) SetFactor(f decimal.Decimal) {
	m.state.Factor = f
}

// Reset restores the startup state.
func (m *Machine) Reset() {
	changed := m.state.NumPoints != m.initial.NumPoints
	m.state = m.initial
	if changed {
		m.regenerate()
	}
}
