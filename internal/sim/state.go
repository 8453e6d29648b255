package sim

import (
	"github.com/shopspring/decimal"

	"github.com/iburimskiy/times-table/internal/config"
)

// Direction is the sign applied to the increment when the factor advances.
type Direction int

const (
	Increasing Direction = iota
	Decreasing
)

func (d Direction) String() string {
	if d == Decreasing {
		return "decreasing"
	}
	return "increasing"
}

// Input is one tick's worth of control signals. The frontend decides edge vs
// level triggering: DecreaseOrder, IncreaseOrder and TogglePause must be true
// only on the tick a key goes down; the others are true every tick it is held.
type Input struct {
	DecreaseOrder bool
	IncreaseOrder bool
	GrowPoints    bool
	ShrinkPoints  bool
	TogglePause   bool
	Forward       bool
	Backward      bool
}

// State is the complete animation state. Increment is always positive; the
// sign of a step comes from Direction.
type State struct {
	Factor    decimal.Decimal
	Increment decimal.Decimal
	NumPoints int
	Direction Direction
	Paused    bool
}

// NewState builds the startup state from validated options.
func NewState(opts config.Options) State {
	return State{
		Factor:    opts.Factor,
		Increment: opts.Increment,
		NumPoints: opts.NumPoints,
		Direction: Increasing,
		Paused:    opts.Paused,
	}
}

// FactorFloat is the factor as used for geometry lookups.
func (s State) FactorFloat() float64 {
	return s.Factor.InexactFloat64()
}

// Transition reports what a tick did besides changing State.
type Transition struct {
	PointsChanged bool
	Advanced      bool
}

// Next applies one tick of input to s. It is pure: the returned state is the
// only effect.
//
// When Forward and Backward are both held, Forward wins.
func Next(s State, in Input) (State, Transition) {
	var tr Transition

	// Order-of-magnitude scaling is an exact decimal shift.
	if in.DecreaseOrder {
		s.Increment = s.Increment.Shift(-1)
	}
	if in.IncreaseOrder {
		s.Increment = s.Increment.Shift(1)
	}

	if in.GrowPoints {
		s.NumPoints += config.PointStep
		tr.PointsChanged = true
	}
	if in.ShrinkPoints && s.NumPoints > config.PointStep {
		s.NumPoints -= config.PointStep
		tr.PointsChanged = true
	}

	if in.TogglePause {
		s.Paused = !s.Paused
	}

	// Manual scrubbing steps even while paused.
	scrub := false
	switch {
	case in.Forward:
		s.Direction = Increasing
		scrub = true
	case in.Backward:
		s.Direction = Decreasing
		scrub = true
	}

	if scrub || !s.Paused {
		if s.Direction == Increasing {
			s.Factor = s.Factor.Add(s.Increment)
		} else {
			s.Factor = s.Factor.Sub(s.Increment)
		}
		tr.Advanced = true
	}

	return s, tr
}
