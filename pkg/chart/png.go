package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/mood/pkg/graph"
)

// PNGOptions adds raster settings to Options.
type PNGOptions struct {
	Options
	// Scale multiplies every dimension. Zero means 2.
	Scale float64
}

// ParseColor reads #rgb or #rrggbb.
func ParseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("chart: color %q: %w", hex, err)
	}
	return c, nil
}

func mustColor(hex string, fallback color.Color) color.Color {
	c, err := ParseColor(hex)
	if err != nil {
		return fallback
	}
	return c
}

// PNG rasterizes c and writes it as a PNG image.
func PNG(w io.Writer, c *graph.Chart, o PNGOptions) error {
	scale := o.Scale
	if scale <= 0 {
		scale = 2
	}
	width, height := Size(c, o.Options)

	dc := gg.NewContext(int(math.Ceil(width*scale)), int(math.Ceil(height*scale)))
	dc.Scale(scale, scale)
	dc.SetColor(color.White)
	dc.Clear()

	text := mustColor(labelColor, color.Black)
	dc.SetColor(text)
	dc.DrawStringAnchored(o.title(c), MarginLeft, 14, 0, 0.5)

	dc.Push()
	dc.Translate(MarginLeft, MarginTop)

	for _, v := range c.YTicks {
		y := c.Scale.Y(v)
		if v == 0 {
			dc.SetColor(mustColor(axisColor, color.Gray{Y: 0x99}))
		} else {
			dc.SetColor(mustColor(gridColor, color.Gray{Y: 0xee}))
		}
		dc.SetLineWidth(0.5)
		dc.DrawLine(0, y, c.Width, y)
		dc.Stroke()

		dc.SetColor(text)
		dc.DrawStringAnchored(strconv.Itoa(v), -6, y, 1, 0.5)
	}

	for _, s := range c.Strokes {
		dc.DrawRectangle(s.Clip.X, s.Clip.Y, s.Clip.Width, s.Clip.Height)
		dc.Clip()
		tracePath(dc, s.Path)
		dc.SetColor(mustColor(s.Color, color.Black))
		dc.SetLineWidth(s.Width)
		dc.Stroke()
		dc.ResetClip()
	}

	for _, m := range c.Markers {
		dc.SetColor(mustColor(m.Color, color.Black))
		dc.DrawCircle(m.Center.X, m.Center.Y, m.Radius)
		dc.Fill()
	}

	future := mustColor(futureColor, color.Gray{Y: 0xbb})
	for _, l := range c.XLabels {
		if l.Future {
			dc.SetColor(future)
		} else {
			dc.SetColor(text)
		}
		if l.Day%2 == 1 || len(c.XLabels) <= 16 {
			dc.DrawStringAnchored(strconv.Itoa(l.Day), l.X, c.Height+12, 0.5, 0.5)
		}
	}
	dc.Pop()

	dc.SetColor(text)
	for i, line := range o.Help {
		dc.DrawStringAnchored(line, MarginLeft, MarginTop+c.Height+MarginBottom+float64(i)*14+6, 0, 0.5)
	}

	return dc.EncodePNG(w)
}

func tracePath(dc *gg.Context, p *graph.Path) {
	dc.NewSubPath()
	dc.MoveTo(p.Start.X, p.Start.Y)
	for _, cu := range p.Cubics {
		dc.CubicTo(cu.C1.X, cu.C1.Y, cu.C2.X, cu.C2.Y, cu.To.X, cu.To.Y)
	}
}
