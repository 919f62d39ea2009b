// Package chart draws a graph.Chart as SVG, PNG or terminal text. The
// geometry comes from package graph; renderers only add margins, labels
// and colors.
package chart

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"tableflip.dev/mood/pkg/graph"
)

// Margins around the plotting area, in canvas units.
const (
	MarginTop    = 28.0
	MarginRight  = 12.0
	MarginBottom = 24.0
	MarginLeft   = 32.0
)

const (
	axisColor   = "#999"
	gridColor   = "#eee"
	labelColor  = "#555"
	futureColor = "#bbb"
	fontFamily  = "sans-serif"
)

// Options are shared by the image renderers.
type Options struct {
	// Title is drawn above the plot. Empty means the month name.
	Title string
	// Help lines are drawn under the plot, e.g. the scoring rule.
	Help []string
}

func (o Options) title(c *graph.Chart) string {
	if o.Title != "" {
		return o.Title
	}
	return c.View.Month.Format("January 2006")
}

// Size returns the full image size for c, margins included.
func Size(c *graph.Chart, o Options) (float64, float64) {
	h := MarginTop + c.Height + MarginBottom + float64(len(o.Help))*14
	return MarginLeft + c.Width + MarginRight, h
}

// SVG writes c as a standalone SVG document. The score line is drawn
// twice with the same path data, once per clip region.
func SVG(w io.Writer, c *graph.Chart, o Options) error {
	width, height := Size(c, o)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(width), num(height), num(width), num(height))
	b.WriteString(`<rect width="100%" height="100%" fill="#fff"/>` + "\n")
	fmt.Fprintf(&b, `<text x="%s" y="18" font-family="%s" font-size="13" fill="%s">%s</text>`+"\n",
		num(MarginLeft), fontFamily, labelColor, html.EscapeString(o.title(c)))

	fmt.Fprintf(&b, `<g transform="translate(%s,%s)">`+"\n", num(MarginLeft), num(MarginTop))

	if len(c.Strokes) > 0 {
		b.WriteString("<defs>\n")
		for _, s := range c.Strokes {
			fmt.Fprintf(&b, `<clipPath id="%s"><rect x="%s" y="%s" width="%s" height="%s"/></clipPath>`+"\n",
				clipID(s.Sign), num(s.Clip.X), num(s.Clip.Y), num(s.Clip.Width), num(s.Clip.Height))
		}
		b.WriteString("</defs>\n")
	}

	for _, v := range c.YTicks {
		y := c.Scale.Y(v)
		stroke := gridColor
		if v == 0 {
			stroke = axisColor
		}
		fmt.Fprintf(&b, `<line x1="0" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="0.5"/>`+"\n",
			num(y), num(c.Width), num(y), stroke)
		fmt.Fprintf(&b, `<text x="-6" y="%s" text-anchor="end" dominant-baseline="middle" font-family="%s" font-size="9" fill="%s">%d</text>`+"\n",
			num(y), fontFamily, labelColor, v)
	}

	for _, s := range c.Strokes {
		fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="%s" stroke-width="%s" clip-path="url(#%s)"/>`+"\n",
			s.Path.String(), s.Color, num(s.Width), clipID(s.Sign))
	}

	for _, m := range c.Markers {
		fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s" fill="%s"><title>%d: %+d</title></circle>`+"\n",
			num(m.Center.X), num(m.Center.Y), num(m.Radius), m.Color, m.Day, m.Score)
	}

	for _, l := range c.XLabels {
		fill := labelColor
		if l.Future {
			fill = futureColor
		}
		fmt.Fprintf(&b, `<text x="%s" y="%s" text-anchor="middle" font-family="%s" font-size="8" fill="%s">%d</text>`+"\n",
			num(l.X), num(c.Height+14), fontFamily, fill, l.Day)
	}
	b.WriteString("</g>\n")

	for i, line := range o.Help {
		fmt.Fprintf(&b, `<text x="%s" y="%s" font-family="%s" font-size="10" fill="%s">%s</text>`+"\n",
			num(MarginLeft), num(MarginTop+c.Height+MarginBottom+float64(i)*14+8), fontFamily, labelColor, html.EscapeString(line))
	}
	b.WriteString("</svg>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func clipID(s graph.Sign) string {
	if s == graph.Negative {
		return "negativeClip"
	}
	return "positiveClip"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
