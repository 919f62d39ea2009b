package graph

import (
	"fmt"

	"tableflip.dev/mood/pkg/mood"
)

// Chart is everything a renderer needs to draw one month.
type Chart struct {
	View    ViewContext
	Bounds  AxisBounds
	Scale   Scale
	Width   float64
	Height  float64
	Points  []ScorePoint
	Elapsed []ScorePoint
	Curve   Curve
	Strokes []Stroke
	Markers []Marker
	YTicks  []int
	XLabels []DayLabel
	Palette Palette
}

// HasCurve reports whether there were enough elapsed days to draw a line.
func (c *Chart) HasCurve() bool {
	return c.Curve.Path != nil
}

// Option customizes Build.
type Option func(*buildOptions)

type buildOptions struct {
	palette Palette
}

// WithPalette overrides DefaultPalette. Empty fields keep the default.
func WithPalette(p Palette) Option {
	return func(o *buildOptions) {
		o.palette = p.orDefault()
	}
}

// Build runs the whole pipeline for one month snapshot.
func Build(set mood.Month, vc ViewContext, opts ...Option) (*Chart, error) {
	o := buildOptions{palette: DefaultPalette}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.palette.Validate(); err != nil {
		return nil, err
	}

	points := ComputeDailyPoints(set, vc.DaysInMonth)
	elapsed := Elapsed(points, vc.LastDay)
	bounds := ResolveBounds(elapsed)

	scale, err := NewScale(bounds, CanvasHeight)
	if err != nil {
		return nil, fmt.Errorf("graph: build %s: %w", vc.Month.Format("2006-01"), err)
	}
	curve, err := BuildCurve(elapsed, bounds)
	if err != nil {
		return nil, fmt.Errorf("graph: build %s: %w", vc.Month.Format("2006-01"), err)
	}

	width := float64(vc.DaysInMonth) * SlotWidth
	return &Chart{
		View:    vc,
		Bounds:  bounds,
		Scale:   scale,
		Width:   width,
		Height:  CanvasHeight,
		Points:  points,
		Elapsed: elapsed,
		Curve:   curve,
		Strokes: Split(curve, width, CanvasHeight, o.palette),
		Markers: Markers(elapsed, scale, o.palette),
		YTicks:  YTicks(bounds),
		XLabels: XLabels(vc.DaysInMonth, vc.LastDay),
		Palette: o.palette,
	}, nil
}
