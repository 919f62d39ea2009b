package graph

import (
	"strconv"
	"strings"
)

// Coordinate is a point on the canvas; y grows downward.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (c Coordinate) String() string {
	return formatFloat(c.X) + "," + formatFloat(c.Y)
}

// Cubic is one bezier segment of a path.
type Cubic struct {
	C1 Coordinate
	C2 Coordinate
	To Coordinate
}

// Path is a start point followed by cubic segments.
type Path struct {
	Start  Coordinate
	Cubics []Cubic
}

// String renders the path as SVG path data.
func (p *Path) String() string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("M ")
	b.WriteString(p.Start.String())
	for _, c := range p.Cubics {
		b.WriteString(" C ")
		b.WriteString(c.C1.String())
		b.WriteString(" ")
		b.WriteString(c.C2.String())
		b.WriteString(" ")
		b.WriteString(c.To.String())
	}
	return b.String()
}

// Flatten samples every segment into steps straight pieces. The result
// starts with Start and ends with the last segment's end point.
func (p *Path) Flatten(steps int) []Coordinate {
	if p == nil {
		return nil
	}
	if steps < 1 {
		steps = 1
	}
	out := make([]Coordinate, 0, 1+len(p.Cubics)*steps)
	out = append(out, p.Start)
	from := p.Start
	for _, c := range p.Cubics {
		for i := 1; i <= steps; i++ {
			out = append(out, c.at(from, float64(i)/float64(steps)))
		}
		from = c.To
	}
	return out
}

func (c Cubic) at(from Coordinate, t float64) Coordinate {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Coordinate{
		X: a*from.X + b*c.C1.X + d*c.C2.X + e*c.To.X,
		Y: a*from.Y + b*c.C1.Y + d*c.C2.Y + e*c.To.Y,
	}
}

// Curve is the plotted score line of the elapsed days.
type Curve struct {
	// Path is nil when fewer than two points were given.
	Path   *Path
	ZeroY  float64
	Points []Coordinate
}

// BuildCurve maps the elapsed points onto the canvas and joins them. Each
// segment keeps its control points at the horizontal midpoint, pinned to
// the y of the endpoint they belong to.
func BuildCurve(elapsed []ScorePoint, b AxisBounds) (Curve, error) {
	scale, err := NewScale(b, CanvasHeight)
	if err != nil {
		return Curve{}, err
	}
	curve := Curve{ZeroY: scale.ZeroY()}
	if len(elapsed) == 0 {
		return curve, nil
	}

	curve.Points = make([]Coordinate, len(elapsed))
	for i, p := range elapsed {
		curve.Points[i] = Coordinate{X: SlotX(i), Y: scale.Y(p.Score)}
	}
	if len(curve.Points) < 2 {
		return curve, nil
	}

	path := &Path{Start: curve.Points[0], Cubics: make([]Cubic, 0, len(curve.Points)-1)}
	for i := 1; i < len(curve.Points); i++ {
		prev, curr := curve.Points[i-1], curve.Points[i]
		cpx := (prev.X + curr.X) / 2
		path.Cubics = append(path.Cubics, Cubic{
			C1: Coordinate{X: cpx, Y: prev.Y},
			C2: Coordinate{X: cpx, Y: curr.Y},
			To: curr,
		})
	}
	curve.Path = path
	return curve, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
