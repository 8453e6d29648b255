package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plan-systems/klog"

	"github.com/iburimskiy/times-table/internal/config"
	"github.com/iburimskiy/times-table/internal/game"
)

func main() {
	klog.InitFlags(flag.CommandLine)
	flag.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()
	defer klog.Flush()

	opts, err := flags.Resolve()
	if err != nil {
		klog.Errorf("%v", err)
		klog.Flush()
		os.Exit(2)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle + " - Q/E increment, W/S points, A/D scrub, Space pause, F factor, C copy, M chime")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(config.TicksPerSecond)

	klog.Infof("starting: points=%d factor=%s increment=%s paused=%v",
		opts.NumPoints, opts.Factor, opts.Increment, opts.Paused)

	g := game.New(opts)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		klog.Errorf("%v", err)
		klog.Flush()
		os.Exit(1)
	}
}
