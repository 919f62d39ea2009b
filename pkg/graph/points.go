// Package graph turns a month of recorded moods into a bounded, two-toned
// score curve plus the markers and axis labels that go with it. Everything
// here is pure and rebuilt on every render.
package graph

import (
	"tableflip.dev/mood/pkg/mood"
)

// ScorePoint is the derived score of one day.
type ScorePoint struct {
	Day      int  `json:"day"`
	Score    int  `json:"score"`
	HasMoods bool `json:"hasMoods"`
}

// ComputeDailyPoints scores every day 1..daysInMonth, in day order. Days
// with nothing recorded score 0.
func ComputeDailyPoints(set mood.Month, daysInMonth int) []ScorePoint {
	if daysInMonth <= 0 {
		return nil
	}
	points := make([]ScorePoint, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		moods := set[day]
		points = append(points, ScorePoint{
			Day:      day,
			Score:    mood.DayScore(moods),
			HasMoods: len(moods) > 0,
		})
	}
	return points
}

// Elapsed keeps the points with Day <= lastDay.
func Elapsed(points []ScorePoint, lastDay int) []ScorePoint {
	out := make([]ScorePoint, 0, len(points))
	for _, p := range points {
		if p.Day <= lastDay {
			out = append(out, p)
		}
	}
	return out
}
