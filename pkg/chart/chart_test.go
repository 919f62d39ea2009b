package chart

import (
	"bytes"
	"image/png"
	"math"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/mood/pkg/graph"
	"tableflip.dev/mood/pkg/mood"
)

var now = time.Date(2024, time.April, 6, 12, 0, 0, 0, time.UTC)

func buildChart(t *testing.T, days map[int][]string) *graph.Chart {
	t.Helper()
	set := mood.Month{}
	for d, names := range days {
		for _, n := range names {
			m, err := mood.Parse(n)
			require.NoError(t, err)
			set[d] = append(set[d], m)
		}
	}
	c, err := graph.Build(set, graph.NewViewContext(now, now))
	require.NoError(t, err)
	return c
}

func TestSVG(t *testing.T) {
	c := buildChart(t, map[int][]string{
		1: {"Happy"},
		2: {"Sad", "Angry"},
		4: {"Tired"},
	})

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, c, Options{Help: mood.ScoreHelp()}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.Contains(t, out, `<clipPath id="positiveClip">`)
	assert.Contains(t, out, `<clipPath id="negativeClip">`)
	assert.Contains(t, out, "April 2024")
	assert.Contains(t, out, "+1: Happy, Relax, Peace, Brave")

	paths := regexp.MustCompile(`<path d="([^"]+)"`).FindAllStringSubmatch(out, -1)
	require.Len(t, paths, 2)
	assert.Equal(t, paths[0][1], paths[1][1], "both strokes share one path")
	assert.Equal(t, c.Curve.Path.String(), paths[0][1])
	assert.Contains(t, out, `stroke="#f6abca" stroke-width="1" clip-path="url(#positiveClip)"`)
	assert.Contains(t, out, `stroke="#9ed3fb" stroke-width="1" clip-path="url(#negativeClip)"`)

	assert.Equal(t, len(c.Markers), strings.Count(out, "<circle "))
	assert.Equal(t, 30-6, strings.Count(out, `fill="#bbb"`), "future day labels")
}

func TestSVGWithoutCurve(t *testing.T) {
	first := time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC)
	c, err := graph.Build(mood.Month{}, graph.NewViewContext(first, first))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, c, Options{Title: "Q & A"}))
	out := buf.String()
	assert.NotContains(t, out, "<path")
	assert.NotContains(t, out, "<clipPath")
	assert.Equal(t, 1, strings.Count(out, "<circle "))
	assert.Contains(t, out, "Q &amp; A")
}

func TestPNG(t *testing.T) {
	c := buildChart(t, map[int][]string{1: {"Happy"}, 3: {"Stress"}})

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, c, PNGOptions{Scale: 1}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	w, h := Size(c, Options{})
	assert.Equal(t, int(math.Ceil(w)), img.Bounds().Dx())
	assert.Equal(t, int(math.Ceil(h)), img.Bounds().Dy())
}

func TestParseColor(t *testing.T) {
	for _, hex := range []string{"#ddd", "#f6abca", "#9ED3FB"} {
		_, err := ParseColor(hex)
		assert.NoError(t, err, hex)
	}
	_, err := ParseColor("pink")
	assert.Error(t, err)
}

func TestTerminal(t *testing.T) {
	c := buildChart(t, map[int][]string{
		1: {"Happy", "Brave"},
		2: {"Sad"},
		3: {"Peace"},
	})
	out := Terminal(c, TerminalOptions{Width: 60, Height: 12})
	assert.Contains(t, out, "April 2024")
	lines := strings.Split(out, "\n")
	assert.GreaterOrEqual(t, len(lines), 12)
	assert.Contains(t, out, "●")
}

func TestTerminalDimsFutureDays(t *testing.T) {
	c := buildChart(t, map[int][]string{1: {"Happy"}})
	require.Equal(t, 6, c.View.LastDay)
	lc := axes(c, TerminalOptions{Width: 90, Height: 12}.withDefaults())

	row := lc.Origin().Y + 1
	seen := map[bool]int{}
	for x := 0; x < lc.Canvas.Width(); {
		start, day := x, 0
		for ; x < lc.Canvas.Width(); x++ {
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
		want := lipgloss.Color(labelColor)
		if day > c.View.LastDay {
			want = lipgloss.Color(futureColor)
		}
		for i := start; i < x; i++ {
			got := lc.Canvas.Cell(canvas.Point{X: i, Y: row}).Style.GetForeground()
			assert.Equal(t, want, got, "day %d", day)
		}
		seen[day > c.View.LastDay]++
	}
	assert.NotZero(t, seen[false], "no elapsed day labels drawn")
	assert.NotZero(t, seen[true], "no future day labels drawn")
}

func TestSplitAtZero(t *testing.T) {
	a := canvas.Float64Point{X: 0, Y: 2}
	b := canvas.Float64Point{X: 1, Y: -2}
	segs := splitAtZero(a, b)
	require.Len(t, segs, 2)
	assert.Equal(t, canvas.Float64Point{X: 0.5, Y: 0}, segs[0][1])
	assert.Equal(t, segs[0][1], segs[1][0])

	same := splitAtZero(canvas.Float64Point{X: 0, Y: 1}, canvas.Float64Point{X: 1, Y: 3})
	assert.Len(t, same, 1)
}
