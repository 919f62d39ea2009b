package graph

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the chart colors as hex strings.
type Palette struct {
	Positive string `json:"positive" yaml:"positive"`
	Negative string `json:"negative" yaml:"negative"`
	Empty    string `json:"empty" yaml:"empty"`
}

// DefaultPalette is pink above the zero line and blue below it.
var DefaultPalette = Palette{
	Positive: "#f6abca",
	Negative: "#9ed3fb",
	Empty:    "#ddd",
}

// Validate checks that every color is #rgb or #rrggbb.
func (p Palette) Validate() error {
	for name, c := range map[string]string{"positive": p.Positive, "negative": p.Negative, "empty": p.Empty} {
		// colorful.Hex ignores anything after the digits.
		if _, err := colorful.Hex(c); err != nil || (len(c) != 4 && len(c) != 7) {
			return fmt.Errorf("graph: %s color %q is not a hex color", name, c)
		}
	}
	return nil
}

func (p Palette) orDefault() Palette {
	if p.Positive == "" {
		p.Positive = DefaultPalette.Positive
	}
	if p.Negative == "" {
		p.Negative = DefaultPalette.Negative
	}
	if p.Empty == "" {
		p.Empty = DefaultPalette.Empty
	}
	return p
}

// StrokeWidth is the width of the score line.
const StrokeWidth = 1.0

// Rect is an axis aligned rectangle.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Sign says which side of the zero line a stroke paints.
type Sign int

const (
	NonNegative Sign = iota
	Negative
)

func (s Sign) String() string {
	if s == Negative {
		return "negative"
	}
	return "non-negative"
}

// Stroke is the shared path drawn inside one clip.
type Stroke struct {
	Sign  Sign
	Clip  Rect
	Path  *Path
	Color string
	Width float64
}

// Clips returns the region above zeroY and the region below it.
func Clips(zeroY, width, height float64) (above, below Rect) {
	above = Rect{X: 0, Y: 0, Width: width, Height: zeroY}
	below = Rect{X: 0, Y: zeroY, Width: width, Height: height - zeroY}
	return above, below
}

// Split draws the same path twice: once clipped to the non-negative half in
// the positive color and once to the negative half in the negative color.
// A curve without a path yields no strokes.
func Split(c Curve, width, height float64, p Palette) []Stroke {
	if c.Path == nil {
		return nil
	}
	above, below := Clips(c.ZeroY, width, height)
	return []Stroke{
		{Sign: NonNegative, Clip: above, Path: c.Path, Color: p.Positive, Width: StrokeWidth},
		{Sign: Negative, Clip: below, Path: c.Path, Color: p.Negative, Width: StrokeWidth},
	}
}
