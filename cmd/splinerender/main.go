// Command splinerender draws an interpolating curve through a set of control
// points and writes it to a PNG file.
//
// Usage:
//
//	splinerender -o curve.png
//	splinerender -strategy lagrange -layout six -o lagrange.png
//	splinerender -config panel.json -drag 1:300,120 -drag 2:150,450 -o dragged.png
//	splinerender -all -dir out/
//
// Each -drag i:x,y replays a pointer gesture that presses on the i-th control
// point, moves it to (x, y) and releases it, exactly as an interactive host
// would. With -all, every strategy is rendered over every built-in layout,
// concurrently, into -dir.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"honnef.co/go/spline"
	"honnef.co/go/spline/internal/config"
)

func main() {
	var (
		cfgPath  = flag.String("config", "", "JSON configuration file")
		strategy = flag.String("strategy", "", "interpolation strategy (hermite or lagrange)")
		layout   = flag.String("layout", "", "initial layout (four or six)")
		width    = flag.Int("width", 0, "canvas width in pixels")
		height   = flag.Int("height", 0, "canvas height in pixels")
		out      = flag.String("o", "spline.png", "output file")
		all      = flag.Bool("all", false, "render every strategy and layout")
		dir      = flag.String("dir", ".", "output directory for -all")
		jobs     = flag.Int("j", runtime.NumCPU(), "maximum concurrent renders for -all")
		noLabels = flag.Bool("nolabels", false, "don't draw control point labels")
		exact    = flag.Bool("exact", false, "stroke the exact Hermite curve instead of its samples")
		debug    = flag.Bool("debug", false, "verbose/debug logging")
		drags    dragList
	)
	flag.Var(&drags, "drag", "move control point `i:x,y` before rendering (repeatable)")
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
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	r := renderer{
		log:    logger,
		labels: !*noLabels,
		exact:  *exact,
		drags:  drags,
	}
	if *all {
		if err := os.MkdirAll(*dir, 0o755); err != nil {
			logger.Error("could not create output directory", "err", err)
			os.Exit(1)
		}
		if err := r.renderAll(cfg, *dir, *jobs); err != nil {
			logger.Error("rendering failed", "err", err)
			os.Exit(1)
		}
		return
	}
	if err := r.renderFile(cfg, *out); err != nil {
		logger.Error("rendering failed", "err", err)
		os.Exit(1)
	}
}

// outputName returns the file name used by -all for a configuration.
func outputName(dir string, cfg config.Config) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%s.png", cfg.Strategy, cfg.Layout))
}
