package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/graph"
	"tableflip.dev/mood/pkg/mood"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestScore(t *testing.T) {
	noColor(t)
	tests := map[int]string{2: "+2", 0: "0", -3: "-3"}
	for in, want := range tests {
		if got := Score(in); got != want {
			t.Errorf("Score(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestDay(t *testing.T) {
	noColor(t)
	happy, _ := mood.Lookup("Happy")
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Day(app.DayRecord{
		Date:  time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC),
		Moods: []mood.Mood{happy},
		Note:  "picnic",
		Score: 1,
	})
	out := buf.String()
	for _, want := range []string{"Tuesday, April 2 2024", happy.String(), "+1", "picnic"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestCatalog(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	(&PrettyPrint{Out: &buf}).Catalog()
	out := buf.String()
	for _, m := range mood.Catalog() {
		if !strings.Contains(out, m.Name) {
			t.Errorf("catalog is missing %s", m.Name)
		}
	}
	if !strings.Contains(out, "-1: All other moods") {
		t.Error("score help missing")
	}
}

func TestReport(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	month := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	pp.Report(app.ReportResult{Month: month})
	if !strings.Contains(buf.String(), "No moods recorded") {
		t.Fatalf("empty report:\n%s", buf.String())
	}

	buf.Reset()
	sad, _ := mood.Lookup("Sad")
	worst := graph.ScorePoint{Day: 3, Score: -1, HasMoods: true}
	pp.Report(app.ReportResult{
		Month:        month,
		RecordedDays: 1,
		NegativeDays: 1,
		Total:        -1,
		Worst:        &worst,
		Best:         &worst,
		Counts:       []app.MoodCount{{Mood: sad, Score: -1, Count: 1}},
	})
	out := buf.String()
	for _, want := range []string{"Report · April 2024", "worst day", "3 (-1)", "Sad"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestCalendarWithoutColor(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	month := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	(&PrettyPrint{Out: &buf}).Calendar(app.MonthView{Month: month}, month, true)
	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("escape sequences leaked:\n%q", out)
	}
	if !strings.Contains(out, "Su Mo Tu We Th Fr Sa") {
		t.Fatalf("header missing:\n%s", out)
	}
}

func TestColorEnabledForNonFile(t *testing.T) {
	if ColorEnabled(&bytes.Buffer{}) {
		t.Fatal("a buffer is not a terminal")
	}
}
