package mood

import (
	"fmt"
	"strings"
)

// weights is the fixed linear scoring rule. Names missing from the table
// score zero.
var weights = map[string]int{
	"Happy":           1,
	"Relax":           1,
	"Peace":           1,
	"Brave":           1,
	"Tired":           0,
	"Period":          0,
	"Diarrhea":        0,
	"Procrastination": -1,
	"Uncomfortable":   -1,
	"Stress":          -1,
	"Anxiety/Panic":   -1,
	"Sad":             -1,
	"Angry":           -1,
	"Guilty":          -1,
	"Shame":           -1,
}

// ScoreOf returns the weight of a mood name: +1, 0 or -1.
func ScoreOf(name string) int {
	return weights[name]
}

// DayScore sums the weights of the moods recorded on one day.
func DayScore(moods []Mood) int {
	score := 0
	for _, m := range moods {
		score += ScoreOf(m.Name)
	}
	return score
}

// ScoreHelp describes the scoring rule, one line per weight, highest first.
func ScoreHelp() []string {
	groups := map[int][]string{}
	for _, m := range catalog {
		w := ScoreOf(m.Name)
		groups[w] = append(groups[w], m.Name)
	}
	return []string{
		fmt.Sprintf("+1: %s", strings.Join(groups[1], ", ")),
		fmt.Sprintf("0: %s", strings.Join(groups[0], ", ")),
		"-1: All other moods",
	}
}
