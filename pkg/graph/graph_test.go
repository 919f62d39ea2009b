package graph

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/mood/pkg/mood"
)

func moods(t *testing.T, names ...string) []mood.Mood {
	t.Helper()
	out := make([]mood.Mood, 0, len(names))
	for _, n := range names {
		m, err := mood.Parse(n)
		require.NoError(t, err)
		out = append(out, m)
	}
	return out
}

func pointsWithScores(scores ...int) []ScorePoint {
	out := make([]ScorePoint, len(scores))
	for i, s := range scores {
		out[i] = ScorePoint{Day: i + 1, Score: s, HasMoods: true}
	}
	return out
}

func TestComputeDailyPoints(t *testing.T) {
	set := mood.Month{
		5: moods(t, "Happy", "Stress"),
		6: moods(t, "Sad", "Angry"),
	}
	points := ComputeDailyPoints(set, 30)
	require.Len(t, points, 30)

	for i, p := range points {
		assert.Equal(t, i+1, p.Day)
	}
	assert.Equal(t, ScorePoint{Day: 5, Score: 0, HasMoods: true}, points[4])
	assert.Equal(t, ScorePoint{Day: 6, Score: -2, HasMoods: true}, points[5])
	assert.Equal(t, ScorePoint{Day: 7, Score: 0, HasMoods: false}, points[6])
}

func TestComputeDailyPointsIgnoresDaysOutsideMonth(t *testing.T) {
	set := mood.Month{31: moods(t, "Happy")}
	points := ComputeDailyPoints(set, 30)
	require.Len(t, points, 30)
	for _, p := range points {
		assert.False(t, p.HasMoods)
	}
}

func TestElapsed(t *testing.T) {
	points := pointsWithScores(1, 2, 3, 4, 5)
	assert.Len(t, Elapsed(points, 0), 0)
	assert.Len(t, Elapsed(points, 3), 3)
	assert.Len(t, Elapsed(points, PastMonthLastDay), 5)
}

func TestResolveBounds(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   AxisBounds
	}{
		{name: "empty", want: AxisBounds{Max: 3, Min: -3}},
		{name: "floor dominates", scores: []int{1, 1, 1}, want: AxisBounds{Max: 3, Min: -3}},
		{name: "high day", scores: []int{5}, want: AxisBounds{Max: 5, Min: -3}},
		{name: "low day", scores: []int{0, -7, 2}, want: AxisBounds{Max: 3, Min: -7}},
		{name: "both", scores: []int{4, -4}, want: AxisBounds{Max: 4, Min: -4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveBounds(pointsWithScores(tt.scores...))
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got.Max, 3)
			assert.LessOrEqual(t, got.Min, -3)
			for _, s := range tt.scores {
				assert.LessOrEqual(t, got.Min, s)
				assert.GreaterOrEqual(t, got.Max, s)
			}
		})
	}
}

func TestDegenerateRange(t *testing.T) {
	flat := AxisBounds{Max: 0, Min: 0}

	_, err := flat.Range()
	assert.True(t, errors.Is(err, ErrDegenerateRange))

	_, err = NewScale(flat, CanvasHeight)
	assert.True(t, errors.Is(err, ErrDegenerateRange))

	_, err = BuildCurve(pointsWithScores(0, 0), flat)
	assert.True(t, errors.Is(err, ErrDegenerateRange))
}

func TestZeroY(t *testing.T) {
	// Scenario: scores [1,1,1] keep the ±3 floor.
	curve, err := BuildCurve(pointsWithScores(1, 1, 1), ResolveBounds(pointsWithScores(1, 1, 1)))
	require.NoError(t, err)
	assert.Equal(t, 100.0, curve.ZeroY)

	// Scenario: one day scoring 5 stretches the top.
	elapsed := pointsWithScores(5)
	b := ResolveBounds(elapsed)
	curve, err = BuildCurve(elapsed, b)
	require.NoError(t, err)
	assert.Equal(t, AxisBounds{Max: 5, Min: -3}, b)
	assert.Equal(t, 125.0, curve.ZeroY)
}

func TestZeroYGrowsWithMax(t *testing.T) {
	prev := -1.0
	for top := 3; top <= 12; top++ {
		s, err := NewScale(AxisBounds{Max: top, Min: -3}, CanvasHeight)
		require.NoError(t, err)
		assert.Greater(t, s.ZeroY(), prev, "max %d", top)
		prev = s.ZeroY()
	}
}

func TestZeroYRisesAsMinApproachesZero(t *testing.T) {
	// With the top fixed, a shallower bottom pushes zero down the canvas.
	deep, err := NewScale(AxisBounds{Max: 3, Min: -6}, CanvasHeight)
	require.NoError(t, err)
	assert.InDelta(t, 200.0/3, deep.ZeroY(), 1e-9)

	shallow, err := NewScale(AxisBounds{Max: 3, Min: -3}, CanvasHeight)
	require.NoError(t, err)
	assert.Equal(t, 100.0, shallow.ZeroY())

	prev := -1.0
	for bottom := -12; bottom <= -3; bottom++ {
		s, err := NewScale(AxisBounds{Max: 3, Min: bottom}, CanvasHeight)
		require.NoError(t, err)
		assert.Greater(t, s.ZeroY(), prev, "min %d", bottom)
		prev = s.ZeroY()
	}
}

func TestScaleRoundTrip(t *testing.T) {
	b := AxisBounds{Max: 5, Min: -4}
	s, err := NewScale(b, CanvasHeight)
	require.NoError(t, err)

	assert.Equal(t, 0.0, s.Y(b.Max))
	assert.Equal(t, CanvasHeight, s.Y(b.Min))
	for score := b.Min; score <= b.Max; score++ {
		y := s.Y(score)
		assert.InDelta(t, float64(score), s.ScoreAt(y), 1e-9)
	}
}

func TestBuildCurveSinglePoint(t *testing.T) {
	curve, err := BuildCurve(pointsWithScores(2), AxisBounds{Max: 3, Min: -3})
	require.NoError(t, err)
	assert.Nil(t, curve.Path)
	require.Len(t, curve.Points, 1)
	assert.Equal(t, 10.0, curve.Points[0].X)
	assert.InDelta(t, 100.0/3, curve.Points[0].Y, 1e-9)
	assert.Equal(t, 100.0, curve.ZeroY)
}

func TestBuildCurvePath(t *testing.T) {
	elapsed := []ScorePoint{
		{Day: 1, Score: 0},
		{Day: 2, Score: 3, HasMoods: true},
		{Day: 3, Score: -3, HasMoods: true},
	}
	curve, err := BuildCurve(elapsed, AxisBounds{Max: 3, Min: -3})
	require.NoError(t, err)
	require.NotNil(t, curve.Path)

	assert.Equal(t, []Coordinate{{10, 100}, {30, 0}, {50, 200}}, curve.Points)
	assert.Equal(t, "M 10,100 C 20,100 20,0 30,0 C 40,0 40,200 50,200", curve.Path.String())

	for i, c := range curve.Path.Cubics {
		prev, curr := curve.Points[i], curve.Points[i+1]
		assert.Equal(t, (prev.X+curr.X)/2, c.C1.X)
		assert.Equal(t, c.C1.X, c.C2.X)
		assert.Equal(t, prev.Y, c.C1.Y)
		assert.Equal(t, curr.Y, c.C2.Y)
		assert.Equal(t, curr, c.To)
	}
}

func TestFlatten(t *testing.T) {
	curve, err := BuildCurve(pointsWithScores(3, -3), AxisBounds{Max: 3, Min: -3})
	require.NoError(t, err)

	flat := curve.Path.Flatten(4)
	require.Len(t, flat, 5)
	assert.Equal(t, curve.Points[0], flat[0])
	assert.Equal(t, curve.Points[1], flat[4])
	// Pinned control points make the midpoint sit halfway.
	assert.InDelta(t, 20, flat[2].X, 1e-9)
	assert.InDelta(t, 100, flat[2].Y, 1e-9)
	for i := 1; i < len(flat); i++ {
		assert.GreaterOrEqual(t, flat[i].Y, flat[i-1].Y)
	}

	var nilPath *Path
	assert.Nil(t, nilPath.Flatten(4))
	assert.Equal(t, "", nilPath.String())
}

func TestSplit(t *testing.T) {
	curve, err := BuildCurve(pointsWithScores(1, -1), AxisBounds{Max: 5, Min: -3})
	require.NoError(t, err)

	strokes := Split(curve, 600, CanvasHeight, DefaultPalette)
	require.Len(t, strokes, 2)

	above, below := strokes[0], strokes[1]
	assert.Equal(t, NonNegative, above.Sign)
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 600, Height: 125}, above.Clip)
	assert.Equal(t, "#f6abca", above.Color)

	assert.Equal(t, Negative, below.Sign)
	assert.Equal(t, Rect{X: 0, Y: 125, Width: 600, Height: 75}, below.Clip)
	assert.Equal(t, "#9ed3fb", below.Color)

	assert.Same(t, above.Path, below.Path)
	assert.Equal(t, StrokeWidth, above.Width)
	assert.Equal(t, StrokeWidth, below.Width)

	assert.Nil(t, Split(Curve{ZeroY: 100}, 600, CanvasHeight, DefaultPalette))
}

func TestMarkers(t *testing.T) {
	elapsed := []ScorePoint{
		{Day: 1},
		{Day: 2, Score: -1, HasMoods: true},
		{Day: 3, Score: 0, HasMoods: true},
		{Day: 4, Score: 2, HasMoods: true},
	}
	s, err := NewScale(AxisBounds{Max: 3, Min: -3}, CanvasHeight)
	require.NoError(t, err)

	got := Markers(elapsed, s, DefaultPalette)
	require.Len(t, got, 4)

	want := []struct {
		tone   Tone
		color  string
		radius float64
	}{
		{ToneEmpty, "#ddd", 1},
		{ToneNegative, "#9ed3fb", 2},
		{TonePositive, "#f6abca", 2},
		{TonePositive, "#f6abca", 2},
	}
	for i, w := range want {
		assert.Equal(t, w.tone, got[i].Tone, "day %d", i+1)
		assert.Equal(t, w.color, got[i].Color, "day %d", i+1)
		assert.Equal(t, w.radius, got[i].Radius, "day %d", i+1)
		assert.Equal(t, SlotX(i), got[i].Center.X)
	}
}

func TestYTicks(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1, 0, -1, -2, -3}, YTicks(AxisBounds{Max: 3, Min: -3}))
	assert.Len(t, YTicks(AxisBounds{Max: 5, Min: -4}), 10)
}

func TestXLabels(t *testing.T) {
	labels := XLabels(30, 12)
	require.Len(t, labels, 30)
	for _, l := range labels {
		assert.Equal(t, l.Day > 12, l.Future, "day %d", l.Day)
	}
	assert.Equal(t, 10.0, labels[0].X)
	assert.Equal(t, 590.0, labels[29].X)
}

func TestNewViewContext(t *testing.T) {
	now := time.Date(2024, time.March, 14, 9, 30, 0, 0, time.UTC)
	tests := []struct {
		name    string
		month   time.Time
		days    int
		lastDay int
	}{
		{"past", time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), 29, 31},
		{"current", time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC), 31, 14},
		{"future", time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), 30, 0},
		{"past year", time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), 31, 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vc := NewViewContext(tt.month, now)
			assert.Equal(t, tt.days, vc.DaysInMonth)
			assert.Equal(t, tt.lastDay, vc.LastDay)
			assert.Equal(t, 1, vc.Month.Day())
		})
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2024, time.June, 3, 12, 0, 0, 0, time.UTC)
	set := mood.Month{
		1: moods(t, "Happy", "Relax", "Peace", "Brave"),
		2: moods(t, "Sad"),
		// Not elapsed yet, so it must not move the bounds.
		20: moods(t, "Sad", "Angry", "Guilty", "Shame", "Stress"),
	}
	c, err := Build(set, NewViewContext(now, now))
	require.NoError(t, err)

	assert.Equal(t, 600.0, c.Width)
	assert.Equal(t, AxisBounds{Max: 4, Min: -3}, c.Bounds)
	assert.Len(t, c.Points, 30)
	assert.Len(t, c.Elapsed, 3)
	assert.Len(t, c.Markers, 3)
	assert.Len(t, c.XLabels, 30)
	assert.Equal(t, []int{4, 3, 2, 1, 0, -1, -2, -3}, c.YTicks)
	assert.True(t, c.HasCurve())
	assert.Len(t, c.Strokes, 2)
	assert.InDelta(t, 4.0/7*200, c.Curve.ZeroY, 1e-9)
}

func TestBuildSingleDay(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	c, err := Build(mood.Month{1: moods(t, "Happy")}, NewViewContext(now, now))
	require.NoError(t, err)
	assert.False(t, c.HasCurve())
	assert.Empty(t, c.Strokes)
	require.Len(t, c.Markers, 1)
	assert.Equal(t, ToneEmpty, ToneOf(ScorePoint{}))
	assert.Len(t, c.XLabels, 30)
}

func TestBuildFutureMonth(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	c, err := Build(nil, NewViewContext(now.AddDate(0, 2, 0), now))
	require.NoError(t, err)
	assert.Empty(t, c.Elapsed)
	assert.Equal(t, AxisBounds{Max: 3, Min: -3}, c.Bounds)
	for _, l := range c.XLabels {
		assert.True(t, l.Future)
	}
}

func TestWithPalette(t *testing.T) {
	now := time.Date(2024, time.June, 5, 12, 0, 0, 0, time.UTC)
	p := Palette{Positive: "#ff0000", Negative: "#0000ff", Empty: "#777"}
	c, err := Build(mood.Month{}, NewViewContext(now, now), WithPalette(p))
	require.NoError(t, err)
	assert.Equal(t, p, c.Palette)
	assert.Equal(t, "#ff0000", c.Strokes[0].Color)
	assert.Equal(t, "#777", c.Markers[0].Color)

	c, err = Build(mood.Month{}, NewViewContext(now, now), WithPalette(Palette{Negative: "#123456"}))
	require.NoError(t, err)
	assert.Equal(t, Palette{Positive: DefaultPalette.Positive, Negative: "#123456", Empty: DefaultPalette.Empty}, c.Palette)
}

func TestPaletteValidate(t *testing.T) {
	tests := map[string]struct {
		palette Palette
		wantErr bool
	}{
		"default":    {palette: DefaultPalette},
		"long form":  {palette: Palette{Positive: "#ABCDEF", Negative: "#000000", Empty: "#fff"}},
		"named":      {palette: Palette{Positive: "pink", Negative: "#000", Empty: "#fff"}, wantErr: true},
		"trailing":   {palette: Palette{Positive: `#ff0000" onload="x`, Negative: "#000", Empty: "#fff"}, wantErr: true},
		"empty":      {palette: Palette{Positive: "#fff", Negative: "#000"}, wantErr: true},
		"short hex4": {palette: Palette{Positive: "#ffff", Negative: "#000", Empty: "#fff"}, wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := tc.palette.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	now := time.Date(2024, time.June, 5, 12, 0, 0, 0, time.UTC)
	_, err := Build(mood.Month{}, NewViewContext(now, now), WithPalette(Palette{Positive: "red"}))
	assert.Error(t, err)
}
