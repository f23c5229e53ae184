package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"

	"fyne.io/fyne/v2"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"BezierBoard/internal/config"
	"BezierBoard/internal/export"
	"BezierBoard/internal/geom"
	bnet "BezierBoard/internal/net"
	"BezierBoard/internal/render"
	"BezierBoard/internal/state"
	"BezierBoard/internal/ui"
)

var (
	flagConfig    = flag.String("config", "", "path to a TOML config file")
	flagLogLevel  = flag.String("log-level", "info", "log level: trace, debug, info, warn, error")
	flagWeb       = flag.String("web", "", "serve the browser editor on this address instead of opening a window (\"-\" uses the config)")
	flagAdvertise = flag.Bool("advertise", false, "announce the browser editor via mDNS")
	flagDiscover  = flag.Duration("discover", 0, "list editors announced on the LAN for this long and exit")
	flagDemo      = flag.Bool("demo", false, "start with a two-segment sample convolution")
	flagExport    = flag.String("export", "", "render the board to a .pdf, .png or .svg file and exit")
)

// demoPath is two discontinuous cubic segments, handy for trying C0/C1.
var demoPath = []geom.Point{
	{X: 100, Y: 300}, {X: 100, Y: 150}, {X: 250, Y: 150}, {X: 250, Y: 300},
	{X: 400, Y: 400}, {X: 450, Y: 250}, {X: 600, Y: 250}, {X: 650, Y: 400},
}

func main() {
	flag.Parse()
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "bezierboard",
		Level: hclog.LevelFromString(*flagLogLevel),
	})
	if err := run(logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(logger hclog.Logger) error {
	if *flagDiscover > 0 {
		return bnet.Browse(*flagDiscover, func(addr string) {
			fmt.Printf("http://%s/\n", addr)
		})
	}

	cfg, err := config.Load(*flagConfig, logger.Named("config"))
	if err != nil {
		return err
	}
	style, err := cfg.RenderStyle()
	if err != nil {
		return err
	}

	seed := func(e *state.Editor) {}
	if *flagDemo {
		seed = seedDemo
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case *flagExport != "":
		e := state.NewEditor(logger.Named("editor"), cfg.Editor.HitRadius)
		seed(e)
		sc := e.Scene()
		page := export.Page(sc, cfg.Canvas.Width, cfg.Canvas.Height)
		if err := export.ExportFile(*flagExport, sc, style, page); err != nil {
			return err
		}
		logger.Info("exported board", "file", *flagExport)
		return nil
	case *flagWeb != "":
		return runWeb(ctx, logger, cfg, style, seed)
	}
	return runDesktop(ctx, logger, cfg, style, seed)
}

func seedDemo(e *state.Editor) {
	e.ToggleDrawingMode()
	for _, p := range demoPath {
		e.HandleClick(p)
	}
	e.ToggleDrawingMode()
}

func runDesktop(ctx context.Context, logger hclog.Logger, cfg config.Config, style render.Style, seed func(*state.Editor)) error {
	e := state.NewEditor(logger.Named("editor"), cfg.Editor.HitRadius)
	seed(e)
	board := ui.NewBoardWidget(e, style)

	if *flagConfig != "" {
		go watchConfig(ctx, logger, func(st render.Style) {
			fyne.Do(func() { board.SetStyle(st) })
		})
	}

	ui.RunApp(board, ui.Options{
		Title:  "BezierBoard",
		Width:  float32(cfg.Canvas.Width),
		Height: float32(cfg.Canvas.Height),
		Logger: logger.Named("ui"),
	})
	return nil
}

func runWeb(ctx context.Context, logger hclog.Logger, cfg config.Config, style render.Style, seed func(*state.Editor)) error {
	addr := *flagWeb
	if addr == "-" {
		addr = cfg.Web.Listen
	}
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return errors.Wrapf(err, "listen address %q", addr)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return errors.Wrapf(err, "port in %q", addr)
	}

	srv := bnet.NewServer(logger.Named("web"), style, cfg.Editor.HitRadius)
	srv.Seed = seed

	if *flagAdvertise || cfg.Web.Advertise {
		mdnsServer, err := bnet.Advertise(port)
		if err != nil {
			return err
		}
		defer mdnsServer.Shutdown()
		logger.Named("mdns").Info("advertising editor", "service", bnet.ServiceType, "port", port)
	}
	if *flagConfig != "" {
		go watchConfig(ctx, logger, srv.SetStyle)
	}

	logger.Info("share link", "url", fmt.Sprintf("http://%s:%d/", bnet.OutgoingIP(logger), port))
	return srv.ListenAndServe(ctx, addr)
}

func watchConfig(ctx context.Context, logger hclog.Logger, apply func(render.Style)) {
	l := logger.Named("config")
	err := config.Watch(ctx, *flagConfig, l, func(c config.Config) {
		st, err := c.RenderStyle()
		if err != nil {
			l.Error("invalid style", "error", err)
			return
		}
		apply(st)
	})
	if err != nil {
		l.Warn("live reload disabled", "error", err)
	}
}
