package chart

import (
	"strconv"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/mood/pkg/graph"
)

// TerminalOptions sizes the text chart in cells.
type TerminalOptions struct {
	Width  int
	Height int
	// Steps is how many straight pieces each curve segment is cut into.
	Steps int
}

func (o TerminalOptions) withDefaults() TerminalOptions {
	if o.Width <= 0 {
		o.Width = 64
	}
	if o.Height <= 0 {
		o.Height = 14
	}
	if o.Steps <= 0 {
		o.Steps = 6
	}
	return o
}

// Terminal draws c with braille lines. The curve is flattened, mapped back
// into (day, score) space and split where it crosses zero so each half
// keeps its color.
func Terminal(c *graph.Chart, o TerminalOptions) string {
	o = o.withDefaults()

	lc := axes(c, o)

	positive := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Palette.Positive))
	negative := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Palette.Negative))
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Palette.Empty))

	if c.HasCurve() {
		pts := toData(c, c.Curve.Path.Flatten(o.Steps))
		for i := 1; i < len(pts); i++ {
			for _, seg := range splitAtZero(pts[i-1], pts[i]) {
				style := positive
				if (seg[0].Y+seg[1].Y)/2 < 0 {
					style = negative
				}
				lc.DrawBrailleLineWithStyle(seg[0], seg[1], style)
			}
		}
	}

	for i, m := range c.Markers {
		p := canvas.Float64Point{X: float64(i), Y: float64(m.Score)}
		switch m.Tone {
		case graph.ToneNegative:
			lc.DrawRuneWithStyle(p, '●', negative)
		case graph.TonePositive:
			lc.DrawRuneWithStyle(p, '●', positive)
		default:
			lc.DrawRuneWithStyle(p, '·', empty)
		}
	}

	var b strings.Builder
	b.WriteString(lc.LabelStyle.Render(c.View.Month.Format("January 2006")))
	b.WriteString("\n")
	b.WriteString(lc.View())
	return b.String()
}

// axes draws the frame and its labels. Days after LastDay are dimmed like
// the future labels of the SVG.
func axes(c *graph.Chart, o TerminalOptions) *linechart.Model {
	maxX := float64(c.View.DaysInMonth - 1)
	if maxX < 1 {
		maxX = 1
	}
	lc := linechart.New(o.Width, o.Height, 0, maxX, float64(c.Bounds.Min), float64(c.Bounds.Max),
		linechart.WithXYSteps(xStep(c.View.DaysInMonth, o.Width), 1),
	)
	lc.AxisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(axisColor))
	lc.LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(labelColor))
	lc.XLabelFormatter = func(_ int, v float64) string {
		return strconv.Itoa(int(v) + 1)
	}
	lc.DrawXYAxisAndLabel()
	dimFutureLabels(&lc, c.View.LastDay, lipgloss.NewStyle().Foreground(lipgloss.Color(futureColor)))
	return &lc
}

// dimFutureLabels restyles the day numbers past lastDay. linechart draws
// every X label with one style, so the row under the axis is repainted.
func dimFutureLabels(lc *linechart.Model, lastDay int, style lipgloss.Style) {
	row := lc.Origin().Y + 1
	width := lc.Canvas.Width()
	for x := 0; x < width; {
		start, day := x, 0
		for ; x < width; x++ {
			r := lc.Canvas.Cell(canvas.Point{X: x, Y: row}).Rune
			if r < '0' || r > '9' {
				break
			}
			day = day*10 + int(r-'0')
		}
		if x == start {
			x++
			continue
		}
		if day <= lastDay {
			continue
		}
		for i := start; i < x; i++ {
			p := canvas.Point{X: i, Y: row}
			lc.Canvas.SetRuneWithStyle(p, lc.Canvas.Cell(p).Rune, style)
		}
	}
}

// toData maps canvas coordinates to (slot index, score).
func toData(c *graph.Chart, pts []graph.Coordinate) []canvas.Float64Point {
	out := make([]canvas.Float64Point, len(pts))
	for i, p := range pts {
		out[i] = canvas.Float64Point{
			X: (p.X - graph.SlotWidth/2) / graph.SlotWidth,
			Y: c.Scale.ScoreAt(p.Y),
		}
	}
	return out
}

// splitAtZero cuts a straight piece where it crosses score 0.
func splitAtZero(a, b canvas.Float64Point) [][2]canvas.Float64Point {
	if (a.Y < 0) == (b.Y < 0) || a.Y == b.Y {
		return [][2]canvas.Float64Point{{a, b}}
	}
	t := a.Y / (a.Y - b.Y)
	mid := canvas.Float64Point{X: a.X + (b.X-a.X)*t, Y: 0}
	return [][2]canvas.Float64Point{{a, mid}, {mid, b}}
}

func xStep(days, width int) int {
	if width >= days*3 {
		return 1
	}
	step := days * 3 / width
	if step < 2 {
		step = 2
	}
	return step
}
