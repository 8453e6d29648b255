package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/times-table/internal/sim"
)

// Key bindings. Edge-triggered actions fire once per press; level-triggered
// ones fire every tick the key is held.
var (
	keysDecreaseOrder = []ebiten.Key{ebiten.KeyQ}
	keysIncreaseOrder = []ebiten.Key{ebiten.KeyE}
	keysGrow          = []ebiten.Key{ebiten.KeyW}
	keysShrink        = []ebiten.Key{ebiten.KeyS}
	keysPause         = []ebiten.Key{ebiten.KeySpace}
	keysForward       = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	keysBackward      = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}

	keyCopy   = ebiten.KeyC
	keyFactor = ebiten.KeyF
	keyReset  = ebiten.KeyR
	keyChime  = ebiten.KeyM
	keyQuit   = ebiten.KeyEscape
)

// watchedKeys lists every key polled each tick.
func watchedKeys() []ebiten.Key {
	var keys []ebiten.Key
	for _, group := range [][]ebiten.Key{
		keysDecreaseOrder, keysIncreaseOrder, keysGrow, keysShrink,
		keysPause, keysForward, keysBackward,
	} {
		keys = append(keys, group...)
	}
	return append(keys, keyCopy, keyFactor, keyReset, keyChime, keyQuit)
}

// keyState is one tick's key snapshot plus the previous tick's, for edge
// detection.
type keyState struct {
	cur  map[ebiten.Key]bool
	prev map[ebiten.Key]bool
}

func (k keyState) down(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if k.cur[key] {
			return true
		}
	}
	return false
}

func (k keyState) justPressed(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if k.cur[key] && !k.prev[key] {
			return true
		}
	}
	return false
}

// input converts the snapshot into simulation signals.
func (k keyState) input() sim.Input {
	return sim.Input{
		DecreaseOrder: k.justPressed(keysDecreaseOrder...),
		IncreaseOrder: k.justPressed(keysIncreaseOrder...),
		GrowPoints:    k.down(keysGrow...),
		ShrinkPoints:  k.down(keysShrink...),
		TogglePause:   k.justPressed(keysPause...),
		Forward:       k.down(keysForward...),
		Backward:      k.down(keysBackward...),
	}
}

// pollKeys snapshots the keyboard and rolls the previous snapshot forward.
func (g *Game) pollKeys() keyState {
	cur := make(map[ebiten.Key]bool, len(g.watched))
	for _, k := range g.watched {
		cur[k] = ebiten.IsKeyPressed(k)
	}
	ks := keyState{cur: cur, prev: g.prevKey}
	g.prevKey = cur
	return ks
}
