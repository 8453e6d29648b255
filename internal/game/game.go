package game

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/shopspring/decimal"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/times-table/internal/audio"
	"github.com/iburimskiy/times-table/internal/config"
	"github.com/iburimskiy/times-table/internal/geometry"
	"github.com/iburimskiy/times-table/internal/scene"
	"github.com/iburimskiy/times-table/internal/sim"
)

type Game struct {
	machine *sim.Machine
	frame   sim.Frame
	scene   scene.Scene
	chime   *audio.Chime

	center geometry.Point
	radius float64
	face   text.Face

	// input edge detection
	watched []ebiten.Key
	prevKey map[ebiten.Key]bool

	// swapped out in tests
	promptText func(current string) (string, error)
	copyText   func(s string) error
}

func New(opts config.Options) *Game {
	cx, cy := config.Center()
	g := &Game{
		center:     geometry.Point{X: cx, Y: cy},
		radius:     config.Radius(),
		face:       text.NewGoXFace(basicfont.Face7x13),
		watched:    watchedKeys(),
		prevKey:    map[ebiten.Key]bool{},
		promptText: zenityPrompt,
		copyText:   clipboard.WriteAll,
		chime: audio.NewChime(config.ChimeSampleRate, config.ChimeBaseFreq,
			config.ChimeDuration, config.ChimeVolume),
	}
	g.machine = sim.NewMachine(sim.NewState(opts), g.center, g.radius)
	g.setFrame(g.machine.Frame(sim.Transition{}))

	if opts.Chime {
		if err := g.chime.Enable(); err != nil {
			klog.Warningf("chime disabled: %v", err)
		}
	}
	return g
}

func (g *Game) setFrame(f sim.Frame) {
	g.frame = f
	g.scene = scene.Build(f, g.center, g.radius)
}

func (g *Game) Update() error {
	keys := g.pollKeys()
	if keys.justPressed(keyQuit) {
		return ebiten.Termination
	}
	g.handleCommands(keys)

	f := g.machine.Step(keys.input())
	if f.LandedOnInteger() {
		g.chime.Play(f.State.Factor.IntPart())
	}
	g.setFrame(f)
	return nil
}

// handleCommands runs the actions that sit outside the simulation.
func (g *Game) handleCommands(keys keyState) {
	if keys.justPressed(keyCopy) {
		summary := scene.Summary(g.machine.State())
		if err := g.copyText(summary); err != nil {
			klog.Warningf("copy to clipboard: %v", err)
		} else {
			klog.Infof("copied %q", summary)
		}
	}
	if keys.justPressed(keyFactor) {
		if err := g.promptFactor(); err != nil {
			klog.Warningf("jump to factor: %v", err)
		}
	}
	if keys.justPressed(keyReset) {
		g.machine.Reset()
		klog.Info("reset to startup parameters")
	}
	if keys.justPressed(keyChime) {
		on, err := g.chime.Toggle()
		if err != nil {
			klog.Warningf("chime: %v", err)
		} else {
			klog.Infof("chime enabled=%v", on)
		}
	}
}

func (g *Game) promptFactor() error {
	s, err := g.promptText(g.machine.State().Factor.String())
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return errors.Wrap(err, "factor dialog")
	}
	f, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return errors.Wrapf(err, "parse factor %q", s)
	}
	g.machine.SetFactor(f)
	return nil
}

func zenityPrompt(current string) (string, error) {
	return zenity.Entry("Jump to factor:",
		zenity.Title(config.WindowTitle),
		zenity.EntryText(current),
	)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawScene(screen, g.scene)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
