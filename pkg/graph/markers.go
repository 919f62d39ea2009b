package graph

// Tone classifies a day for its marker.
type Tone int

const (
	ToneEmpty Tone = iota
	TonePositive
	ToneNegative
)

func (t Tone) String() string {
	switch t {
	case TonePositive:
		return "positive"
	case ToneNegative:
		return "negative"
	default:
		return "empty"
	}
}

// Marker is the dot drawn for one elapsed day.
type Marker struct {
	Day    int        `json:"day"`
	Score  int        `json:"score"`
	Center Coordinate `json:"center"`
	Radius float64    `json:"radius"`
	Color  string     `json:"color"`
	Tone   Tone       `json:"-"`
}

// ToneOf picks the tone of a day. A zero score with moods counts as
// positive.
func ToneOf(p ScorePoint) Tone {
	switch {
	case !p.HasMoods:
		return ToneEmpty
	case p.Score < 0:
		return ToneNegative
	default:
		return TonePositive
	}
}

// StyleFor returns the color and radius of a day's marker.
func StyleFor(p ScorePoint, palette Palette) (string, float64) {
	switch ToneOf(p) {
	case ToneNegative:
		return palette.Negative, 2
	case TonePositive:
		return palette.Positive, 2
	default:
		return palette.Empty, 1
	}
}

// Markers places one marker per elapsed point, matching the curve layout.
func Markers(elapsed []ScorePoint, scale Scale, palette Palette) []Marker {
	out := make([]Marker, len(elapsed))
	for i, p := range elapsed {
		color, radius := StyleFor(p, palette)
		out[i] = Marker{
			Day:    p.Day,
			Score:  p.Score,
			Center: Coordinate{X: SlotX(i), Y: scale.Y(p.Score)},
			Radius: radius,
			Color:  color,
			Tone:   ToneOf(p),
		}
	}
	return out
}

// DayLabel is a day number on the horizontal axis.
type DayLabel struct {
	Day    int     `json:"day"`
	X      float64 `json:"x"`
	Future bool    `json:"future"`
}

// XLabels lists every day of the month. Days after lastDay are marked
// Future.
func XLabels(daysInMonth, lastDay int) []DayLabel {
	if daysInMonth <= 0 {
		return nil
	}
	out := make([]DayLabel, daysInMonth)
	for i := range out {
		day := i + 1
		out[i] = DayLabel{Day: day, X: SlotX(i), Future: day > lastDay}
	}
	return out
}
