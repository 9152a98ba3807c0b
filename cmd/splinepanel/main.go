// Command splinepanel opens a window showing an interpolating curve through a
// set of control points that can be dragged with the mouse.
//
// Keys:
//
//	Tab  switch between Hermite and Lagrange interpolation
//	L    switch between the built-in layouts
//	E    toggle between the sampled and the exact Hermite curve
//	R    reset the points
//	Esc  quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"honnef.co/go/spline"
	"honnef.co/go/spline/internal/config"
)

var errQuit = errors.New("quit")

type game struct {
	cfg    config.Config
	log    *slog.Logger
	panel  *spline.Panel
	canvas *imageCanvas
	exact  bool

	lastX, lastY int
}

func newGame(cfg config.Config, log *slog.Logger) (*game, error) {
	g := &game{
		cfg:    cfg,
		log:    log,
		canvas: newImageCanvas(cfg.Width, cfg.Height),
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// reset rebuilds the panel from the current configuration.
func (g *game) reset() error {
	p, err := g.cfg.Panel(spline.WithExactCurve(g.exact))
	if err != nil {
		return err
	}
	g.panel = p
	g.log.Info("panel ready",
		slog.String("strategy", g.cfg.Strategy),
		slog.String("layout", g.cfg.Layout),
		slog.Int("points", p.Points().Len()))
	return nil
}

// cycle returns the element following cur in names, wrapping around.
func cycle(names []string, cur string) string {
	i := slices.Index(names, cur)
	return names[(i+1)%len(names)]
}

func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return errQuit
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.cfg.Strategy = cycle(spline.Strategies, g.cfg.Strategy)
		return g.keepPoints()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.cfg.Layout = cycle(spline.Layouts, g.cfg.Layout)
		g.cfg.Points = nil
		return g.reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		g.exact = !g.exact
		return g.keepPoints()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return g.reset()
	}

	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.panel.PointerDown(fx, fy)
	}
	if x != g.lastX || y != g.lastY {
		g.panel.PointerMove(fx, fy)
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.panel.PointerUp(fx, fy)
	}
	return nil
}

// keepPoints rebuilds the panel without losing the user's edits.
func (g *game) keepPoints() error {
	interp, err := g.cfg.Interpolator()
	if err != nil {
		return err
	}
	g.panel = spline.NewPanel(interp, g.panel.Points(),
		spline.WithPickRadius(g.cfg.PickRadius),
		spline.WithExactCurve(g.exact))
	g.log.Info("switched strategy",
		slog.String("strategy", interp.Name()),
		slog.Bool("exact", g.exact))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.panel.TakeRedraw() {
		g.panel.Draw(g.canvas)
	}
	screen.DrawImage(g.canvas.img, nil)

	status := fmt.Sprintf("%s / %s", g.panel.Interpolator().Name(), g.cfg.Layout)
	if cp := g.panel.Selection().Selected(); cp != nil {
		status += fmt.Sprintf("  dragging %s", cp)
	}
	drawText(screen, status, spline.Pt(8, 8), colorLabel)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func main() {
	var (
		cfgPath  = flag.String("config", "", "JSON configuration file")
		strategy = flag.String("strategy", "", "interpolation strategy (hermite or lagrange)")
		layout   = flag.String("layout", "", "initial layout (four or six)")
		debug    = flag.Bool("debug", false, "verbose/debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	spline.SetLogger(logger)

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			logger.Error("could not load configuration", "err", err)
			os.Exit(1)
		}
	}
	if *strategy != "" {
		cfg.Strategy = *strategy
	}
	if *layout != "" {
		cfg.Layout = *layout
		cfg.Points = nil
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	g, err := newGame(cfg, logger)
	if err != nil {
		logger.Error("could not create panel", "err", err)
		os.Exit(1)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("spline panel")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		logger.Error("game loop failed", "err", err)
		os.Exit(1)
	}
}
