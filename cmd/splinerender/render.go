package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/remeh/sizedwaitgroup"

	"honnef.co/go/spline"
	"honnef.co/go/spline/internal/config"
	"honnef.co/go/spline/internal/ggcanvas"
)

// drag moves control point Index to To.
type drag struct {
	Index int
	To    spline.Point
}

// parseDrag parses "i:x,y".
func parseDrag(s string) (drag, error) {
	idx, xy, ok := strings.Cut(s, ":")
	if !ok {
		return drag{}, fmt.Errorf("drag %q: want i:x,y", s)
	}
	xs, ys, ok := strings.Cut(xy, ",")
	if !ok {
		return drag{}, fmt.Errorf("drag %q: want i:x,y", s)
	}
	i, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil {
		return drag{}, fmt.Errorf("drag %q: bad index: %w", s, err)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return drag{}, fmt.Errorf("drag %q: bad x: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return drag{}, fmt.Errorf("drag %q: bad y: %w", s, err)
	}
	return drag{Index: i, To: spline.Pt(x, y)}, nil
}

// dragList implements flag.Value for repeated -drag flags.
type dragList []drag

func (dl *dragList) String() string {
	parts := make([]string, len(*dl))
	for i, d := range *dl {
		parts[i] = fmt.Sprintf("%d:%g,%g", d.Index, d.To.X, d.To.Y)
	}
	return strings.Join(parts, " ")
}

func (dl *dragList) Set(s string) error {
	d, err := parseDrag(s)
	if err != nil {
		return err
	}
	*dl = append(*dl, d)
	return nil
}

// apply replays the drags as pointer gestures on p: press on the point's
// current position, move to the target, release.
func (dl dragList) apply(p *spline.Panel) error {
	for _, d := range dl {
		cp, err := p.Points().Lookup(d.Index)
		if err != nil {
			return fmt.Errorf("drag %d: %w", d.Index, err)
		}
		from := cp.Pos
		p.PointerDown(from.X, from.Y)
		p.PointerMove(d.To.X, d.To.Y)
		p.PointerUp(d.To.X, d.To.Y)
		if got := p.Points().At(d.Index).Pos; got != d.To {
			// An earlier point within the pick radius captured the press.
			return fmt.Errorf("drag %d: press at %s captured a different point", d.Index, from)
		}
	}
	return nil
}

type renderer struct {
	log    *slog.Logger
	labels bool
	exact  bool
	drags  dragList
}

// render draws the panel described by cfg and writes it as PNG to w.
func (r renderer) render(cfg config.Config, w io.Writer) error {
	p, err := cfg.Panel(spline.WithExactCurve(r.exact))
	if err != nil {
		return err
	}
	if err := r.drags.apply(p); err != nil {
		return err
	}

	style := ggcanvas.DefaultStyle
	style.Labels = r.labels
	c := ggcanvas.New(cfg.Width, cfg.Height, style)
	defer c.Close()
	p.Draw(c)

	f := p.Frame(c.Bounds())
	r.log.Info("rendered curve",
		slog.String("strategy", cfg.Strategy),
		slog.Int("points", len(f.Points)),
		slog.Int("vertices", f.Curve.Len()),
		slog.Int("runs", len(f.Curve.Runs)),
		slog.String("extent", f.Curve.BoundingBox().String()))
	return c.EncodePNG(w)
}

func (r renderer) renderFile(cfg config.Config, path string) error {
	var buf bytes.Buffer
	if err := r.render(cfg, &buf); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	r.log.Info("wrote image",
		slog.String("path", path),
		slog.String("size", humanize.Bytes(uint64(buf.Len()))))
	return nil
}

// renderAll renders every strategy over every built-in layout. The panels
// are independent of each other, so up to jobs of them are rendered at
// once.
func (r renderer) renderAll(base config.Config, dir string, jobs int) error {
	var (
		mu   sync.Mutex
		errs []error
	)
	swg := sizedwaitgroup.New(max(jobs, 1))
	for _, strategy := range spline.Strategies {
		for _, layout := range spline.Layouts {
			cfg := base
			cfg.Strategy = strategy
			cfg.Layout = layout
			cfg.Points = nil

			swg.Add()
			go func() {
				defer swg.Done()
				if err := r.renderFile(cfg, outputName(dir, cfg)); err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
				}
			}()
		}
	}
	swg.Wait()
	return errors.Join(errs...)
}
