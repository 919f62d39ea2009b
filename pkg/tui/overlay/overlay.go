// Package overlay draws one view on top of another.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// Placement controls where the foreground lands. With Absolute set the
// top-left corner is pinned to X, Y; otherwise the alignment and margins
// apply. Either way the box is kept on screen.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int

	Absolute bool
	X, Y     int
}

// Centered is the default placement.
func Centered() Placement {
	return Placement{Horizontal: lipgloss.Center, Vertical: lipgloss.Center}
}

// At pins the top-left corner to x, y.
func At(x, y int) Placement {
	return Placement{Absolute: true, X: x, Y: y}
}

// Box is the screen area the foreground occupies.
type Box struct {
	X, Y, Width, Height int
}

// Size measures a rendered view in cells.
func Size(view string) (int, int) {
	if view == "" {
		return 0, 0
	}
	lines := strings.Split(view, "\n")
	width := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > width {
			width = w
		}
	}
	return width, len(lines)
}

// Locate returns the box a foreground of the given size occupies on a
// width by height screen.
func Locate(width, height, fgWidth, fgHeight int, p Placement) Box {
	if fgWidth > width {
		fgWidth = width
	}
	if fgHeight > height {
		fgHeight = height
	}
	x, y := offsets(width, height, fgWidth, fgHeight, p)
	return Box{X: x, Y: y, Width: fgWidth, Height: fgHeight}
}

// Compose overlays foreground atop background, keeping the background
// outside the overlay's box.
func Compose(background string, width, height int, foreground string, p Placement) string {
	bgLines := normalizeBackground(background, width, height)
	fgWidth, fgHeight := Size(foreground)
	if fgWidth <= 0 || width <= 0 || height <= 0 {
		return strings.Join(bgLines, "\n")
	}

	box := Locate(width, height, fgWidth, fgHeight, p)
	fgLines := strings.Split(foreground, "\n")
	for row := 0; row < box.Height; row++ {
		destY := box.Y + row
		if destY < 0 || destY >= len(bgLines) {
			continue
		}
		fgLine := padToWidth(fgLines[row], box.Width)
		base := bgLines[destY]
		prefix := padToWidth(sliceWidth(base, 0, box.X), box.X)
		bgLines[destY] = prefix + reset + fgLine + reset + sliceWidth(base, box.X+box.Width, width)
	}
	return strings.Join(bgLines, "\n")
}

// reset ends any style left open by a cut line.
const reset = "\x1b[m"

func normalizeBackground(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padToWidth(lines[i], width)
	}
	return lines
}

func padToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(s)
	if w > width {
		return sliceWidth(s, 0, width)
	}
	return s + strings.Repeat(" ", width-w)
}

// sliceWidth cuts the cells [start, end) out of s. Escape sequences are
// kept so styled text survives the cut.
func sliceWidth(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}

	var b strings.Builder
	seen := 0
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
		}
		if inEscape {
			b.WriteRune(r)
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		rw := lipgloss.Width(string(r))
		next := seen + rw
		if next <= start {
			seen = next
			continue
		}
		if seen >= end || next > end {
			break
		}
		if seen < start {
			// A wide rune straddling start is replaced by padding.
			b.WriteString(strings.Repeat(" ", next-start))
			seen = next
			continue
		}
		b.WriteRune(r)
		seen = next
	}
	return b.String()
}

func offsets(width, height, fgWidth, fgHeight int, p Placement) (int, int) {
	var x, y int
	if p.Absolute {
		x, y = p.X, p.Y
	} else {
		h := p.Horizontal
		x = p.MarginX
		switch h {
		case lipgloss.Right:
			x = width - fgWidth - p.MarginX
		case lipgloss.Center:
			x = (width - fgWidth) / 2
		}
		y = p.MarginY
		switch p.Vertical {
		case lipgloss.Bottom:
			y = height - fgHeight - p.MarginY
		case lipgloss.Center:
			y = (height - fgHeight) / 2
		}
	}
	return clamp(x, 0, width-fgWidth), clamp(y, 0, height-fgHeight)
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
