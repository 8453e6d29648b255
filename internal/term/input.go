package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/times-table/internal/sim"
)

// collector gathers the key events seen during one tick. Terminals report
// presses and auto-repeats, never key-up, so a key event during a tick
// counts as that key being held for the tick.
type collector struct {
	in    sim.Input
	copy  bool
	reset bool
	quit  bool
}

func (c *collector) add(ev *tcell.EventKey) {
	c.addKey(ev.Key(), ev.Rune())
}

func (c *collector) addKey(key tcell.Key, r rune) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		c.quit = true
		return
	case tcell.KeyRight:
		c.in.Forward = true
		return
	case tcell.KeyLeft:
		c.in.Backward = true
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch unicode.ToLower(r) {
	case 'q':
		c.in.DecreaseOrder = true
	case 'e':
		c.in.IncreaseOrder = true
	case 'w':
		c.in.GrowPoints = true
	case 's':
		c.in.ShrinkPoints = true
	case ' ':
		c.in.TogglePause = true
	case 'd':
		c.in.Forward = true
	case 'a':
		c.in.Backward = true
	case 'c':
		c.copy = true
	case 'r':
		c.reset = true
	}
}
