package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/spline"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "panel.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	interp, err := cfg.Interpolator()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, spline.NewHermite(), interp)
	diff(t, spline.Rect{X0: 0, Y0: 0, X1: 600, Y1: 600}, cfg.Viewport())
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, `{"strategy": "lagrange", "lagrangeStep": 0.05}`))
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Strategy = "lagrange"
	want.LagrangeStep = 0.05
	diff(t, want, cfg)

	interp, err := cfg.Interpolator()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, spline.Lagrange{Step: 0.05}, interp)
}

func TestLoadPoints(t *testing.T) {
	cfg, err := Load(writeFile(t, `{
		"points": [
			{"label": "start", "x": 10, "y": 20},
			{"u": 2.5, "x": 30, "y": 40}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	pts, err := cfg.ControlPoints()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 2, pts.Len())
	diff(t, spline.ControlPoint{Label: "start", U: 0, Pos: spline.Pt(10, 20)}, *pts.At(0))
	diff(t, spline.ControlPoint{Label: "P1", U: 2.5, Pos: spline.Pt(30, 40)}, *pts.At(1))
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got error %v, want %v", err, os.ErrNotExist)
	}
	if _, err := Load(writeFile(t, `{"strategy": `)); err == nil {
		t.Error("expected an error for malformed JSON")
	}
	_, err := Load(writeFile(t, `{"strategy": "bezier", "layout": "nine"}`))
	if !errors.Is(err, spline.ErrUnknownStrategy) {
		t.Errorf("got error %v, want %v", err, spline.ErrUnknownStrategy)
	}
	if !errors.Is(err, spline.ErrUnknownLayout) {
		t.Errorf("got error %v, want %v", err, spline.ErrUnknownLayout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"size", func(cfg *Config) { cfg.Width = 0 }, "canvas size"},
		{"radius", func(cfg *Config) { cfg.PickRadius = -1 }, "pick radius"},
		{"hermite step", func(cfg *Config) { cfg.HermiteStep = 2 }, "Hermite step"},
		{"lagrange step", func(cfg *Config) { cfg.LagrangeStep = 0 }, "Lagrange step"},
		{"single hermite point", func(cfg *Config) {
			cfg.Strategy = "HERMITE"
			cfg.Points = []PointConfig{{X: 1, Y: 1}}
		}, "at least two points"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got error %v, want one mentioning %q", err, tt.want)
			}
		})
	}

	// Explicit points make the layout irrelevant.
	cfg := Default()
	cfg.Layout = "bogus"
	cfg.Points = []PointConfig{{X: 1, Y: 1}, {X: 2, Y: 2}}
	if err := cfg.Validate(); err != nil {
		t.Error(err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	u := 1.5
	cfg := Default()
	cfg.Strategy = "lagrange"
	cfg.Points = []PointConfig{{Label: "a", X: 1, Y: 2}, {U: &u, X: 3, Y: 4}}

	path := filepath.Join(t.TempDir(), "saved.json")
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, cfg, got)
}

func TestPanel(t *testing.T) {
	cfg := Default()
	cfg.PickRadius = 3
	p, err := cfg.Panel()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 3.0, p.Selection().Radius())
	diff(t, 4, p.Points().Len())

	// Within the default radius but not the configured one.
	p.PointerDown(205, 200)
	diff(t, false, p.Selection().Active())
}
