package app

import (
	"sort"
	"time"

	"tableflip.dev/mood/pkg/graph"
	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/timeutil"
)

// MoodCount is how many days of the month carried a mood.
type MoodCount struct {
	Mood  mood.Mood `json:"mood" yaml:"mood"`
	Score int       `json:"score" yaml:"score"`
	Count int       `json:"count" yaml:"count"`
}

// ReportResult summarises the elapsed days of one month.
type ReportResult struct {
	Month        time.Time          `json:"month" yaml:"month"`
	Counts       []MoodCount        `json:"counts" yaml:"counts"`
	Points       []graph.ScorePoint `json:"points" yaml:"points"`
	RecordedDays int                `json:"recordedDays" yaml:"recordedDays"`
	PositiveDays int                `json:"positiveDays" yaml:"positiveDays"`
	NegativeDays int                `json:"negativeDays" yaml:"negativeDays"`
	NeutralDays  int                `json:"neutralDays" yaml:"neutralDays"`
	Total        int                `json:"total" yaml:"total"`
	Best         *graph.ScorePoint  `json:"best,omitempty" yaml:"best,omitempty"`
	Worst        *graph.ScorePoint  `json:"worst,omitempty" yaml:"worst,omitempty"`
}

// Report counts moods and classifies the elapsed days of a month. Days
// without moods count toward none of the buckets.
func (s *Service) Report(month time.Time) (ReportResult, error) {
	if err := s.ready(); err != nil {
		return ReportResult{}, err
	}
	set := s.Store.Moods(month)
	vc := graph.NewViewContext(month, s.now())
	elapsed := graph.Elapsed(graph.ComputeDailyPoints(set, vc.DaysInMonth), vc.LastDay)

	res := ReportResult{Month: timeutil.FirstOfMonth(month), Points: elapsed}
	for i := range elapsed {
		p := elapsed[i]
		if !p.HasMoods {
			continue
		}
		res.RecordedDays++
		res.Total += p.Score
		switch {
		case p.Score > 0:
			res.PositiveDays++
		case p.Score < 0:
			res.NegativeDays++
		default:
			res.NeutralDays++
		}
		if res.Best == nil || p.Score > res.Best.Score {
			res.Best = &elapsed[i]
		}
		if res.Worst == nil || p.Score < res.Worst.Score {
			res.Worst = &elapsed[i]
		}
	}

	counts := make(map[string]int)
	for day, moods := range set {
		if day > vc.LastDay {
			continue
		}
		for _, m := range moods {
			counts[m.Name]++
		}
	}
	order := make(map[string]int)
	for i, name := range mood.Names() {
		order[name] = i
	}
	for name, n := range counts {
		m, ok := mood.Lookup(name)
		if !ok {
			m = mood.Mood{Name: name}
		}
		res.Counts = append(res.Counts, MoodCount{Mood: m, Score: mood.ScoreOf(name), Count: n})
	}
	sort.Slice(res.Counts, func(i, j int) bool {
		a, b := res.Counts[i], res.Counts[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		oa, okA := order[a.Mood.Name]
		ob, okB := order[b.Mood.Name]
		if okA != okB {
			return okA
		}
		if oa != ob {
			return oa < ob
		}
		return a.Mood.Name < b.Mood.Name
	})
	return res, nil
}
