package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/mood/pkg/chart"
	"tableflip.dev/mood/pkg/drag"
	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/tui/overlay"
)

const closeGlyph = "×"

// analyticsView is the rendered overlay plus the geometry needed to hit
// test it. The frame adds one border cell and one padding cell per side.
type analyticsView struct {
	content string
	inner   int
	width   int
	height  int
}

func (m *Model) renderAnalytics() analyticsView {
	th := m.theme.Analytics

	var body []string
	c, err := m.svc.Analyse(m.month)
	if err != nil {
		body = append(body, m.theme.Footer.Error.Render("ERR: "+err.Error()))
	} else {
		body = append(body, strings.Split(chart.Terminal(c, chart.TerminalOptions{Width: 62, Height: 12}), "\n")...)
	}
	body = append(body, "")
	for _, line := range mood.ScoreHelp() {
		body = append(body, th.Help.Render(line))
	}
	body = append(body, "", th.Help.Render("drag the title bar to move · a/esc closes"))

	title := th.Title.Render("Analytics · " + m.month.Format("January 2006"))
	inner := lipgloss.Width(title) + 2
	for _, line := range body {
		if w := lipgloss.Width(line); w > inner {
			inner = w
		}
	}
	gap := inner - lipgloss.Width(title) - lipgloss.Width(closeGlyph)
	bar := title + strings.Repeat(" ", gap) + th.Close.Render(closeGlyph)

	content := th.Frame.Render(strings.Join(append([]string{bar}, body...), "\n"))
	w, h := overlay.Size(content)
	return analyticsView{content: content, inner: inner, width: w, height: h}
}

// target classifies a point relative to the overlay's top-left corner. The
// top border and the title row form the handle; the close glyph sits at
// the end of the title row.
func (v analyticsView) target(x, y int) drag.Target {
	switch {
	case y == 1 && x == v.inner+1:
		return drag.TargetClose
	case y >= 0 && y <= 1 && x >= 0 && x < v.width:
		return drag.TargetHandle
	default:
		return drag.TargetOther
	}
}

func (m *Model) analyticsPlacement() overlay.Placement {
	if p, ok := m.drag.State().Position.Coordinates(); ok {
		return overlay.At(int(p.X), int(p.Y))
	}
	return overlay.Centered()
}

// analyticsBox renders the overlay and returns where it lands on screen.
func (m *Model) analyticsBox() (analyticsView, overlay.Box) {
	v := m.renderAnalytics()
	w, h := m.screen()
	return v, overlay.Locate(w, h, v.width, v.height, m.analyticsPlacement())
}

func (m *Model) openAnalytics() {
	m.analyticsOpen = true
	m.drag.Open()
}

func (m *Model) closeAnalytics() {
	m.analyticsOpen = false
	m.drag.Close()
}

// handleAnalyticsPress returns true when the press landed on the overlay.
func (m *Model) handleAnalyticsPress(x, y int) bool {
	v, box := m.analyticsBox()
	rect := drag.Rect{X: float64(box.X), Y: float64(box.Y), Width: float64(box.Width), Height: float64(box.Height)}
	pointer := drag.Point{X: float64(x), Y: float64(y)}
	if !rect.Contains(pointer) {
		return false
	}
	target := v.target(x-box.X, y-box.Y)
	if target == drag.TargetClose {
		m.closeAnalytics()
		return true
	}
	m.drag.HandleDown(pointer, rect, target)
	return true
}
