package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/mood/pkg/mood"
)

var april = time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

func TestWeeks(t *testing.T) {
	tests := map[string]struct {
		month    time.Time
		rows     int
		firstRow []int
	}{
		"starts on monday": {
			month:    april,
			rows:     5,
			firstRow: []int{0, 1, 2, 3, 4, 5, 6},
		},
		"february starting sunday": {
			month:    time.Date(2015, time.February, 10, 0, 0, 0, 0, time.UTC),
			rows:     4,
			firstRow: []int{1, 2, 3, 4, 5, 6, 7},
		},
		"starts on saturday": {
			month:    time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			rows:     6,
			firstRow: []int{0, 0, 0, 0, 0, 0, 1},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			weeks := Weeks(tc.month)
			if len(weeks) != tc.rows {
				t.Fatalf("rows = %d, want %d", len(weeks), tc.rows)
			}
			for i, d := range tc.firstRow {
				if weeks[0][i] != d {
					t.Fatalf("first row = %v, want %v", weeks[0], tc.firstRow)
				}
			}
		})
	}
}

func TestLocate(t *testing.T) {
	r, c, ok := Locate(april, 7)
	if !ok || r != 1 || c != 0 {
		t.Fatalf("Locate(7) = %d,%d,%v", r, c, ok)
	}
	if _, _, ok := Locate(april, 31); ok {
		t.Fatal("april has no 31st")
	}
}

func TestDays(t *testing.T) {
	happy, _ := mood.Lookup("Happy")
	sad, _ := mood.Lookup("Sad")
	set := mood.Month{2: {happy}, 3: {sad, happy}, 4: {sad}}
	notes := mood.Notes{5: "dentist"}
	now := time.Date(2024, time.April, 4, 18, 0, 0, 0, time.UTC)

	days := Days(april, set, notes, now, 3)
	if len(days) != 30 {
		t.Fatalf("len = %d", len(days))
	}
	if !days[3].IsToday || days[2].IsToday {
		t.Fatal("today should be the 4th")
	}
	if !days[4].IsFuture || days[3].IsFuture {
		t.Fatal("days after today are future")
	}
	if days[1].Score != 1 || days[2].Score != 0 || days[3].Score != -1 {
		t.Fatalf("scores %d %d %d", days[1].Score, days[2].Score, days[3].Score)
	}
	if !days[2].IsSelected {
		t.Fatal("3rd should be selected")
	}
	if !days[4].HasEntry() || days[0].HasEntry() {
		t.Fatal("a note counts as an entry")
	}

	past := Days(april, nil, nil, now.AddDate(0, 2, 0), 0)
	for _, d := range past {
		if d.IsFuture || d.IsToday {
			t.Fatalf("past month day %d marked %+v", d.Day, d)
		}
	}
	future := Days(april, nil, nil, now.AddDate(0, -1, 0), 0)
	if !future[0].IsFuture {
		t.Fatal("future month days are future")
	}
}

func TestRender(t *testing.T) {
	happy, _ := mood.Lookup("Happy")
	days := Days(april, mood.Month{1: {happy}}, mood.Notes{1: "a very long note here"}, april, 0)

	out := ansi.Strip(Render(april, days, DefaultOptions()))
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], "Sun") {
		t.Fatalf("header = %q", lines[0])
	}
	// Header plus five weeks of three lines each.
	if len(lines) != 1+5*3 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(out, happy.Emoji) {
		t.Fatal("emoji missing")
	}
	if !strings.Contains(out, "a very l…") {
		t.Fatalf("note preview not truncated:\n%s", out)
	}
}

func TestRenderCompact(t *testing.T) {
	opts := DefaultOptions()
	opts.Compact = true
	out := ansi.Strip(Render(april, Days(april, nil, nil, april, 0), opts))
	want := strings.Join([]string{
		"Su Mo Tu We Th Fr Sa",
		"    1  2  3  4  5  6",
		" 7  8  9 10 11 12 13",
		"14 15 16 17 18 19 20",
		"21 22 23 24 25 26 27",
		"28 29 30",
	}, "\n")
	if out != want {
		t.Fatalf("got\n%s\nwant\n%s", out, want)
	}
}

func TestRenderZeroMonth(t *testing.T) {
	if got := Render(time.Time{}, nil, DefaultOptions()); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}
