package main

import (
	"log/slog"
	"math"
	"os"

	"github.com/osuushi/polypi"
	"github.com/osuushi/polypi/internal/prompt"
	"github.com/osuushi/polypi/internal/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Interactive demo of approximating pi with inscribed polygons. Side counts are
// read from stdin, one per line, and each valid one prints an approximation of
// the circle's circumference and of pi. An empty line quits.
func main() {
	opts := prompt.DefaultOptions()
	app := newApp(&opts)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	polypi.SetLogger(newLogger(opts.Debug))

	session := prompt.NewSession(os.Stdin, os.Stdout, opts)
	if err := session.Run(); err != nil {
		polypi.Logger().Error("session failed", "err", err)
		os.Exit(1)
	}
}

func newApp(opts *prompt.Options) *kingpin.Application {
	app := kingpin.New("polypi", "Approximate pi from the perimeter of a polygon inscribed in a circle.")
	app.Flag("radius", "Radius of the circle.").Default("1.0").Float64Var(&opts.Radius)
	app.Flag("debug", "Log each approximation and dump the quadrant vertices.").BoolVar(&opts.Debug)
	app.Flag("draw", "Print the polygon inline as an image (iTerm only).").BoolVar(&opts.Draw)
	app.Flag("scale", "Pixels per unit when drawing.").Default("200").Float64Var(&opts.Scale)
	app.Flag("svg", "Write the polygon as an SVG document after each approximation.").BoolVar(&opts.SVG)
	app.Validate(func(*kingpin.Application) error {
		if opts.Radius <= 0 || math.IsInf(opts.Radius, 0) || math.IsNaN(opts.Radius) {
			return errors.Errorf("--radius must be finite and positive, got %v", opts.Radius)
		}
		if opts.Scale <= 0 {
			return errors.Errorf("--scale must be positive, got %v", opts.Scale)
		}
		if opts.Draw && opts.Scale > render.MaxScale(opts.Radius) {
			return errors.Errorf("--draw with --radius=%v needs --scale at most %v", opts.Radius, render.MaxScale(opts.Radius))
		}
		return nil
	})
	return app
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
