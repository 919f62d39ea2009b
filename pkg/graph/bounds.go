package graph

import (
	"errors"
	"fmt"
)

const (
	// SlotWidth is the horizontal room given to each day.
	SlotWidth = 20.0
	// CanvasHeight is the logical height of the chart.
	CanvasHeight = 200.0
	// Envelope is the smallest score magnitude the axis always shows.
	Envelope = 3
)

// ErrDegenerateRange means the axis would span zero scores.
var ErrDegenerateRange = errors.New("graph: degenerate axis range")

// AxisBounds is the vertical extent of the chart in score units.
type AxisBounds struct {
	Max int `json:"max"`
	Min int `json:"min"`
}

// Range returns Max-Min, or ErrDegenerateRange when it is not positive.
func (b AxisBounds) Range() (int, error) {
	r := b.Max - b.Min
	if r <= 0 {
		return 0, fmt.Errorf("%w: max %d, min %d", ErrDegenerateRange, b.Max, b.Min)
	}
	return r, nil
}

// ResolveBounds computes the axis for the elapsed points. The result always
// includes +Envelope and -Envelope.
func ResolveBounds(elapsed []ScorePoint) AxisBounds {
	b := AxisBounds{Max: Envelope, Min: -Envelope}
	for _, p := range elapsed {
		if p.Score > b.Max {
			b.Max = p.Score
		}
		if p.Score < b.Min {
			b.Min = p.Score
		}
	}
	return b
}

// Scale maps scores to canvas y coordinates and back.
type Scale struct {
	bounds AxisBounds
	height float64
	span   float64
}

// NewScale validates the bounds and builds a scale over height.
func NewScale(b AxisBounds, height float64) (Scale, error) {
	r, err := b.Range()
	if err != nil {
		return Scale{}, err
	}
	if height <= 0 {
		return Scale{}, fmt.Errorf("graph: canvas height must be positive, got %v", height)
	}
	return Scale{bounds: b, height: height, span: float64(r)}, nil
}

// Bounds returns the bounds the scale was built from.
func (s Scale) Bounds() AxisBounds { return s.bounds }

// Height is the canvas height.
func (s Scale) Height() float64 { return s.height }

// Y places a score on the canvas. Max maps to 0 and Min to the height.
func (s Scale) Y(score int) float64 {
	return float64(s.bounds.Max-score) / s.span * s.height
}

// ZeroY is where score 0 sits.
func (s Scale) ZeroY() float64 {
	return float64(s.bounds.Max) / s.span * s.height
}

// ScoreAt is the inverse of Y for any y, including ones between ticks.
func (s Scale) ScoreAt(y float64) float64 {
	return float64(s.bounds.Max) - y/s.height*s.span
}

// SlotX is the horizontal center of the i-th slot, counting from 0.
func SlotX(i int) float64 {
	return float64(i)*SlotWidth + SlotWidth/2
}

// YTicks lists every integer score from Max down to Min.
func YTicks(b AxisBounds) []int {
	if b.Max < b.Min {
		return nil
	}
	ticks := make([]int, 0, b.Max-b.Min+1)
	for v := b.Max; v >= b.Min; v-- {
		ticks = append(ticks, v)
	}
	return ticks
}
