package config

import (
	"flag"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	WindowWidth  = 1000
	WindowHeight = 1000
	WindowTitle  = "Times Table Shapes"

	// Circle radius is WindowWidth / RadiusDivisor.
	RadiusDivisor = 2.1

	// One logical update per tick.
	TickDuration   = 25 * time.Millisecond
	TicksPerSecond = int(time.Second / TickDuration)

	// PointStep is both the grow/shrink amount and the smallest point count.
	PointStep = 5

	DefaultNumPoints = 200
	DefaultFactor    = "2"
	DefaultIncrement = "0.01"

	// Drawing
	MarkerRadius  = 3
	EdgeWidth     = 2
	OutlineWidth  = 1
	StatusX       = 10
	StatusY       = 8
	StatusSpacing = 20

	// Chime
	ChimeSampleRate = 44100
	ChimeBaseFreq   = 440.0
	ChimeDuration   = 120 * time.Millisecond
	ChimeVolume     = 0.25
)

// Radius is the boundary circle radius in window pixels.
func Radius() float64 {
	return WindowWidth / RadiusDivisor
}

// Center is the window centre in window pixels.
func Center() (float64, float64) {
	return WindowWidth / 2, WindowHeight / 2
}

// Options holds the startup parameters a user may override on the command line.
type Options struct {
	NumPoints int
	Factor    decimal.Decimal
	Increment decimal.Decimal
	Paused    bool
	Chime     bool
}

// Defaults returns the startup parameters used when no flags are given.
func Defaults() Options {
	return Options{
		NumPoints: DefaultNumPoints,
		Factor:    decimal.RequireFromString(DefaultFactor),
		Increment: decimal.RequireFromString(DefaultIncrement),
	}
}

// Flags binds Options to a flag set. Call Resolve after parsing.
type Flags struct {
	numPoints *int
	factor    *string
	increment *string
	paused    *bool
	chime     *bool
}

// RegisterFlags adds the startup flags to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		numPoints: fs.Int("points", DefaultNumPoints, "initial number of points (positive multiple of 5)"),
		factor:    fs.String("factor", DefaultFactor, "initial multiplication factor"),
		increment: fs.String("increment", DefaultIncrement, "initial per-tick factor increment (> 0)"),
		paused:    fs.Bool("paused", false, "start with the animation paused"),
		chime:     fs.Bool("chime", false, "play a tone whenever the factor reaches an integer"),
	}
}

// Resolve validates the parsed flag values.
func (f *Flags) Resolve() (Options, error) {
	opts := Defaults()
	opts.Paused = *f.paused
	opts.Chime = *f.chime

	if *f.numPoints < PointStep || *f.numPoints%PointStep != 0 {
		return opts, errors.Errorf("-points must be a positive multiple of %d, got %d", PointStep, *f.numPoints)
	}
	opts.NumPoints = *f.numPoints

	factor, err := decimal.NewFromString(*f.factor)
	if err != nil {
		return opts, errors.Wrapf(err, "parse -factor %q", *f.factor)
	}
	opts.Factor = factor

	inc, err := decimal.NewFromString(*f.increment)
	if err != nil {
		return opts, errors.Wrapf(err, "parse -increment %q", *f.increment)
	}
	if !inc.IsPositive() {
		return opts, errors.Errorf("-increment must be > 0, got %s", inc)
	}
	opts.Increment = inc

	return opts, nil
}
