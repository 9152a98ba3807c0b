package spline

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultDiscards(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	pts := FourPointLayout()
	sel := NewSelection(pts, DefaultPickRadius, nil)
	sel.PointerDown(200, 200)
	sel.PointerUp(200, 200)
	NewLagrange().Sample(pts, NewRectFromSize(Sz(600, 600)))

	out := buf.String()
	for _, want := range []string{
		"captured control point",
		"label=P0",
		"released control point",
		"sampled curve",
		"strategy=lagrange",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output is missing %q:\n%s", want, out)
		}
	}
}
