package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/iburimskiy/times-table/internal/config"
	"github.com/iburimskiy/times-table/internal/term"
)

func main() {
	klog.InitFlags(flag.CommandLine)
	// stderr belongs to the terminal UI; log to files unless asked otherwise.
	flag.Set("logtostderr", "false")
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()
	defer klog.Flush()

	opts, err := flags.Resolve()
	if err != nil {
		klog.Errorf("%v", err)
		klog.Flush()
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		klog.Errorf("%v", err)
		klog.Flush()
		os.Exit(1)
	}
}

func run(opts config.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	klog.Infof("starting terminal view: points=%d factor=%s increment=%s",
		opts.NumPoints, opts.Factor, opts.Increment)
	app := term.NewApp(screen, opts, clipboard.WriteAll)
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
