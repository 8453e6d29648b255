package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/times-table/internal/config"
	"github.com/iburimskiy/times-table/internal/sim"
)

func keys(cur, prev []ebiten.Key) keyState {
	ks := keyState{cur: map[ebiten.Key]bool{}, prev: map[ebiten.Key]bool{}}
	for _, k := range cur {
		ks.cur[k] = true
	}
	for _, k := range prev {
		ks.prev[k] = true
	}
	return ks
}

func TestKeyState_EdgeTriggeredOnlyOnPress(t *testing.T) {
	first := keys([]ebiten.Key{ebiten.KeyQ, ebiten.KeyE, ebiten.KeySpace}, nil).input()
	if !first.DecreaseOrder || !first.IncreaseOrder || !first.TogglePause {
		t.Fatalf("first tick should fire edge signals: %+v", first)
	}
	held := []ebiten.Key{ebiten.KeyQ, ebiten.KeyE, ebiten.KeySpace}
	second := keys(held, held).input()
	if second.DecreaseOrder || second.IncreaseOrder || second.TogglePause {
		t.Fatalf("held keys must not repeat edge signals: %+v", second)
	}
}

func TestKeyState_LevelTriggeredWhileHeld(t *testing.T) {
	held := []ebiten.Key{ebiten.KeyW, ebiten.KeyS, ebiten.KeyArrowRight, ebiten.KeyA}
	in := keys(held, held).input()
	want := sim.Input{GrowPoints: true, ShrinkPoints: true, Forward: true, Backward: true}
	if in != want {
		t.Fatalf("input = %+v, want %+v", in, want)
	}
}

func TestKeyState_NothingPressed(t *testing.T) {
	if in := keys(nil, []ebiten.Key{ebiten.KeyQ}).input(); in != (sim.Input{}) {
		t.Fatalf("input = %+v, want zero", in)
	}
}

func TestWatchedKeys_CoverBindings(t *testing.T) {
	watched := map[ebiten.Key]bool{}
	for _, k := range watchedKeys() {
		watched[k] = true
	}
	for _, k := range []ebiten.Key{ebiten.KeyQ, ebiten.KeyE, ebiten.KeyW, ebiten.KeyS, ebiten.KeySpace,
		ebiten.KeyD, ebiten.KeyA, ebiten.KeyArrowLeft, ebiten.KeyArrowRight, keyCopy, keyFactor, keyReset, keyChime, keyQuit} {
		if !watched[k] {
			t.Errorf("key %v is bound but not polled", k)
		}
	}
}

func TestPromptFactor(t *testing.T) {
	g := New(config.Defaults())

	g.promptText = func(current string) (string, error) {
		if current != "2" {
			t.Errorf("dialog prefilled with %q, want 2", current)
		}
		return " 3.25 ", nil
	}
	if err := g.promptFactor(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := g.machine.State().Factor.String(); got != "3.25" {
		t.Fatalf("factor = %s, want 3.25", got)
	}

	g.promptText = func(string) (string, error) { return "", zenity.ErrCanceled }
	if err := g.promptFactor(); err != nil {
		t.Fatalf("cancel should not be an error: %v", err)
	}

	g.promptText = func(string) (string, error) { return "three", nil }
	if err := g.promptFactor(); err == nil {
		t.Fatal("expected parse error")
	}
	if got := g.machine.State().Factor.String(); got != "3.25" {
		t.Fatalf("factor changed after bad input: %s", got)
	}
}

func TestHandleCommands_CopyAndReset(t *testing.T) {
	g := New(config.Defaults())
	var copied string
	g.copyText = func(s string) error {
		copied = s
		return nil
	}

	g.machine.Step(sim.Input{GrowPoints: true})
	g.handleCommands(keys([]ebiten.Key{keyCopy}, nil))
	if copied != "factor=2.01 increment=0.01 points=205 direction=increasing" {
		t.Fatalf("copied %q", copied)
	}

	g.handleCommands(keys([]ebiten.Key{keyReset}, nil))
	if s := g.machine.State(); s.NumPoints != 200 || s.Factor.String() != "2" {
		t.Fatalf("reset state = %+v", s)
	}

	g.copyText = func(string) error { return errors.New("no clipboard") }
	g.handleCommands(keys([]ebiten.Key{keyCopy}, nil))
}

func TestNew_InitialSceneMatchesOptions(t *testing.T) {
	opts := config.Defaults()
	opts.NumPoints = 15
	g := New(opts)
	if len(g.scene.Markers) != 15 || len(g.scene.Lines) != 15 {
		t.Fatalf("markers=%d lines=%d", len(g.scene.Markers), len(g.scene.Lines))
	}
	w, h := g.Layout(1, 1)
	if w != config.WindowWidth || h != config.WindowHeight {
		t.Fatalf("Layout = %dx%d", w, h)
	}
}
