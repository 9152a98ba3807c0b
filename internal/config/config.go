// Package config loads the settings shared by the spline commands.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"honnef.co/go/spline"
)

// Config describes one panel: which curve to draw, through which points, on
// how large a canvas.
type Config struct {
	Strategy     string        `json:"strategy"`
	Layout       string        `json:"layout"`
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	PickRadius   float64       `json:"pickRadius"`
	HermiteStep  float64       `json:"hermiteStep"`
	LagrangeStep float64       `json:"lagrangeStep"`
	Points       []PointConfig `json:"points,omitempty"`
}

// PointConfig is an explicit control point. U defaults to the point's index.
type PointConfig struct {
	Label string   `json:"label,omitempty"`
	U     *float64 `json:"u,omitempty"`
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
}

// Default returns the classic panel configuration: the Hermite strategy
// over the four point layout on a 600×600 canvas.
func Default() Config {
	return Config{
		Strategy:     "hermite",
		Layout:       "four",
		Width:        600,
		Height:       600,
		PickRadius:   spline.DefaultPickRadius,
		HermiteStep:  spline.DefaultHermiteStep,
		LagrangeStep: spline.DefaultLagrangeStep,
	}
}

// Load reads a JSON configuration from path. Fields missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as indented JSON.
func (cfg Config) Save(path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// Validate reports all problems with cfg.
func (cfg Config) Validate() error {
	var errs []error
	if _, err := spline.ParseStrategy(cfg.Strategy); err != nil {
		errs = append(errs, err)
	}
	if len(cfg.Points) == 0 {
		if _, err := spline.Layout(cfg.Layout); err != nil {
			errs = append(errs, err)
		}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid canvas size %dx%d", cfg.Width, cfg.Height))
	}
	if !(cfg.PickRadius > 0) {
		errs = append(errs, fmt.Errorf("invalid pick radius %v", cfg.PickRadius))
	}
	if !(cfg.HermiteStep > 0 && cfg.HermiteStep <= 1) {
		errs = append(errs, fmt.Errorf("invalid Hermite step %v", cfg.HermiteStep))
	}
	if !(cfg.LagrangeStep > 0) {
		errs = append(errs, fmt.Errorf("invalid Lagrange step %v", cfg.LagrangeStep))
	}
	if strings.EqualFold(cfg.Strategy, "hermite") && len(cfg.Points) == 1 {
		errs = append(errs, errors.New("a Hermite spline needs at least two points"))
	}
	return errors.Join(errs...)
}

// Interpolator returns the configured interpolation strategy with the
// configured sample step.
func (cfg Config) Interpolator() (spline.Interpolator, error) {
	interp, err := spline.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	switch interp := interp.(type) {
	case spline.Hermite:
		interp.Step = cfg.HermiteStep
		return interp, nil
	case spline.Lagrange:
		interp.Step = cfg.LagrangeStep
		return interp, nil
	default:
		return interp, nil
	}
}

// ControlPoints returns a fresh sequence of the configured control points.
// Explicit points take precedence over the named layout.
func (cfg Config) ControlPoints() (*spline.Points, error) {
	if len(cfg.Points) == 0 {
		return spline.Layout(cfg.Layout)
	}
	cps := make([]spline.ControlPoint, len(cfg.Points))
	for i, pc := range cfg.Points {
		u := float64(i)
		if pc.U != nil {
			u = *pc.U
		}
		cps[i] = spline.ControlPoint{Label: pc.Label, U: u, Pos: spline.Pt(pc.X, pc.Y)}
	}
	return spline.NewPoints(cps...), nil
}

// Viewport returns the visible part of canvas space.
func (cfg Config) Viewport() spline.Rect {
	return spline.NewRectFromSize(spline.Sz(float64(cfg.Width), float64(cfg.Height)))
}

// Panel builds a panel from the configuration.
func (cfg Config) Panel(opts ...spline.PanelOption) (*spline.Panel, error) {
	interp, err := cfg.Interpolator()
	if err != nil {
		return nil, err
	}
	pts, err := cfg.ControlPoints()
	if err != nil {
		return nil, err
	}
	opts = append([]spline.PanelOption{spline.WithPickRadius(cfg.PickRadius)}, opts...)
	return spline.NewPanel(interp, pts, opts...), nil
}
