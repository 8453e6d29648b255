package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plan-systems/klog"

	"github.com/iburimskiy/times-table/internal/config"
	"github.com/iburimskiy/times-table/internal/geometry"
	"github.com/iburimskiy/times-table/internal/scene"
	"github.com/iburimskiy/times-table/internal/sim"
)

// App runs the times-table animation on a terminal screen.
type App struct {
	screen   tcell.Screen
	renderer *Renderer
	machine  *sim.Machine
	center   geometry.Point
	radius   float64
	tick     time.Duration

	copyText func(s string) error
}

// NewApp prepares an app on an initialised screen.
func NewApp(screen tcell.Screen, opts config.Options, copyText func(string) error) *App {
	cx, cy := config.Center()
	a := &App{
		screen:   screen,
		renderer: NewRenderer(screen),
		center:   geometry.Point{X: cx, Y: cy},
		radius:   config.Radius(),
		tick:     config.TickDuration,
		copyText: copyText,
	}
	a.machine = sim.NewMachine(sim.NewState(opts), a.center, a.radius)
	return a
}

// Run drives one simulation step per tick until ctx is done or the user quits.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()

	a.draw(a.machine.Frame(sim.Transition{}))

	var c collector
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				c.add(ev)
			case *tcell.EventResize:
				a.screen.Sync()
			}
			if c.quit {
				return nil
			}
		case <-ticker.C:
			a.step(c)
			c = collector{}
		}
	}
}

// step applies one tick of collected input and redraws.
func (a *App) step(c collector) sim.Frame {
	if c.reset {
		a.machine.Reset()
	}
	if c.copy && a.copyText != nil {
		summary := scene.Summary(a.machine.State())
		if err := a.copyText(summary); err != nil {
			klog.Warningf("copy to clipboard: %v", err)
		}
	}
	f := a.machine.Step(c.in)
	a.draw(f)
	return f
}

func (a *App) draw(f sim.Frame) {
	a.renderer.Draw(scene.Build(f, a.center, a.radius))
	a.screen.Show()
}
