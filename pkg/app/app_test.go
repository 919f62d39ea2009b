package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"tableflip.dev/mood/pkg/graph"
	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/store"
)

var fixedNow = time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)

func newService(t *testing.T) *Service {
	t.Helper()
	return &Service{
		Store: store.New(store.NewMemorySink(), nil),
		Now:   func() time.Time { return fixedNow },
	}
}

func day(t *testing.T, d int) time.Time {
	t.Helper()
	date, err := Date(fixedNow, d)
	if err != nil {
		t.Fatalf("date: %v", err)
	}
	return date
}

func names(moods []mood.Mood) string {
	out := make([]string, len(moods))
	for i, m := range moods {
		out[i] = m.Name
	}
	return strings.Join(out, ",")
}

func TestToggleMood(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	date := day(t, 5)

	added, moods, err := svc.ToggleMood(ctx, date, "happy")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !added || names(moods) != "Happy" {
		t.Fatalf("added=%v moods=%s", added, names(moods))
	}

	if _, _, err := svc.ToggleMood(ctx, date, "Stress"); err != nil {
		t.Fatal(err)
	}
	rec, err := svc.Day(date)
	if err != nil {
		t.Fatal(err)
	}
	if names(rec.Moods) != "Happy,Stress" || rec.Score != 0 {
		t.Fatalf("unexpected day %+v", rec)
	}

	added, moods, err = svc.ToggleMood(ctx, date, "Happy")
	if err != nil {
		t.Fatal(err)
	}
	if added || names(moods) != "Stress" {
		t.Fatalf("added=%v moods=%s", added, names(moods))
	}
}

func TestConcurrentTogglesKeepEveryMood(t *testing.T) {
	catalog := mood.Catalog()
	for trial := 0; trial < 50; trial++ {
		svc := newService(t)
		date := day(t, 5)

		var wg sync.WaitGroup
		errs := make(chan error, len(catalog))
		for _, m := range catalog {
			wg.Add(1)
			go func(name string) {
				defer wg.Done()
				if _, _, err := svc.ToggleMood(context.Background(), date, name); err != nil {
					errs <- err
				}
			}(m.Name)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			t.Fatalf("toggle: %v", err)
		}

		if got := svc.Store.Get(date, 5); len(got) != len(catalog) {
			t.Fatalf("trial %d: %d moods stored, want %d: %s", trial, len(got), len(catalog), names(got))
		}
	}
}

func TestConcurrentAddAndRemove(t *testing.T) {
	svc := newService(t)
	date := day(t, 6)
	ctx := context.Background()
	if _, err := svc.AddMood(ctx, date, "Sad"); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for _, name := range []string{"Happy", "Relax", "Brave"} {
		wg.Add(2)
		go func(name string) {
			defer wg.Done()
			_, _ = svc.AddMood(ctx, date, name)
		}(name)
		go func() {
			defer wg.Done()
			_, _ = svc.RemoveMood(ctx, date, "Sad")
		}()
	}
	wg.Wait()

	got := svc.Store.Get(date, 6)
	if len(got) != 3 || mood.Has(got, "Sad") {
		t.Fatalf("moods = %s, want Happy, Relax and Brave", names(got))
	}
	for _, name := range []string{"Happy", "Relax", "Brave"} {
		if !mood.Has(got, name) {
			t.Fatalf("missing %s in %s", name, names(got))
		}
	}
}

func TestUnknownMoodRejected(t *testing.T) {
	svc := newService(t)
	_, _, err := svc.ToggleMood(context.Background(), day(t, 1), "Bored")
	if !errors.Is(err, mood.ErrUnknownMood) {
		t.Fatalf("expected ErrUnknownMood, got %v", err)
	}
	if _, err := svc.RemoveMood(context.Background(), day(t, 1), "Bored"); !errors.Is(err, mood.ErrUnknownMood) {
		t.Fatalf("expected ErrUnknownMood, got %v", err)
	}
}

func TestAddAndRemoveMood(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	date := day(t, 2)

	for i := 0; i < 2; i++ {
		moods, err := svc.AddMood(ctx, date, "Brave")
		if err != nil {
			t.Fatal(err)
		}
		if names(moods) != "Brave" {
			t.Fatalf("AddMood is not idempotent: %s", names(moods))
		}
	}

	moods, err := svc.RemoveMood(ctx, date, "Sad")
	if err != nil || names(moods) != "Brave" {
		t.Fatalf("removing an absent mood: %s, %v", names(moods), err)
	}
	moods, err = svc.RemoveMood(ctx, date, "Brave")
	if err != nil || len(moods) != 0 {
		t.Fatalf("remove: %s, %v", names(moods), err)
	}
	if months, _ := svc.Months(); len(months) != 0 {
		t.Fatalf("empty month kept: %v", months)
	}
}

func TestSetNote(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	date := day(t, 9)

	if err := svc.SetNote(ctx, date, "ran 5k"); err != nil {
		t.Fatal(err)
	}
	if got, _ := svc.Note(date); got != "ran 5k" {
		t.Fatalf("note = %q", got)
	}
	if err := svc.SetNote(ctx, date, ""); err != nil {
		t.Fatal(err)
	}
	if got, _ := svc.Note(date); got != "" {
		t.Fatalf("note not deleted: %q", got)
	}
}

func TestDate(t *testing.T) {
	feb := time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)
	if _, err := Date(feb, 29); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("expected ErrInvalidDay, got %v", err)
	}
	if _, err := Date(feb, 0); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("expected ErrInvalidDay, got %v", err)
	}
	d, err := Date(feb, 28)
	if err != nil || d.Day() != 28 {
		t.Fatalf("Date(feb, 28) = %v, %v", d, err)
	}
}

func TestNoStore(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Month(fixedNow); !errors.Is(err, ErrNoStore) {
		t.Fatalf("expected ErrNoStore, got %v", err)
	}
	if _, err := svc.Analyse(fixedNow); !errors.Is(err, ErrNoStore) {
		t.Fatalf("expected ErrNoStore, got %v", err)
	}
}

func TestAnalyse(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	for _, name := range []string{"Happy", "Relax", "Peace", "Brave"} {
		if _, err := svc.AddMood(ctx, day(t, 1), name); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := svc.AddMood(ctx, day(t, 2), "Sad"); err != nil {
		t.Fatal(err)
	}

	chart, err := svc.Analyse(fixedNow)
	if err != nil {
		t.Fatalf("analyse: %v", err)
	}
	if chart.View.LastDay != 10 || len(chart.Elapsed) != 10 {
		t.Fatalf("unexpected view %+v", chart.View)
	}
	if chart.Bounds != (graph.AxisBounds{Max: 4, Min: -3}) {
		t.Fatalf("unexpected bounds %+v", chart.Bounds)
	}
	if !chart.HasCurve() {
		t.Fatal("expected a curve")
	}

	past, err := svc.Analyse(fixedNow.AddDate(0, -1, 0))
	if err != nil {
		t.Fatal(err)
	}
	if past.View.LastDay != graph.PastMonthLastDay || len(past.Elapsed) != 29 {
		t.Fatalf("unexpected past view %+v", past.View)
	}
}

func TestAnalysePalette(t *testing.T) {
	svc := newService(t)
	chart, err := svc.Analyse(fixedNow)
	if err != nil {
		t.Fatal(err)
	}
	if chart.Palette != graph.DefaultPalette {
		t.Fatalf("palette = %+v, want the default", chart.Palette)
	}

	svc.Palette = graph.Palette{Positive: "#e91e63"}
	if chart, err = svc.Analyse(fixedNow); err != nil {
		t.Fatal(err)
	}
	if chart.Palette.Positive != "#e91e63" || chart.Palette.Negative != graph.DefaultPalette.Negative {
		t.Fatalf("palette = %+v", chart.Palette)
	}

	// Explicit options win over the service palette.
	if chart, err = svc.Analyse(fixedNow, graph.WithPalette(graph.Palette{Positive: "#000"})); err != nil {
		t.Fatal(err)
	}
	if chart.Palette.Positive != "#000" {
		t.Fatalf("palette = %+v", chart.Palette)
	}

	svc.Palette = graph.Palette{Negative: "blue"}
	if _, err := svc.Analyse(fixedNow); err == nil {
		t.Fatal("a named color should be rejected")
	}
}

func TestReport(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	add := func(d int, names ...string) {
		for _, n := range names {
			if _, err := svc.AddMood(ctx, day(t, d), n); err != nil {
				t.Fatal(err)
			}
		}
	}
	add(1, "Happy", "Relax")
	add(2, "Sad")
	add(3, "Tired")
	add(4, "Happy")
	// Future days are left out.
	future, _ := Date(fixedNow, 20)
	if _, err := svc.AddMood(ctx, future, "Angry"); err != nil {
		t.Fatal(err)
	}

	res, err := svc.Report(fixedNow)
	if err != nil {
		t.Fatal(err)
	}
	if res.RecordedDays != 4 || res.PositiveDays != 2 || res.NegativeDays != 1 || res.NeutralDays != 1 {
		t.Fatalf("unexpected buckets %+v", res)
	}
	if res.Total != 2 {
		t.Fatalf("total = %d", res.Total)
	}
	if res.Best == nil || res.Best.Day != 1 || res.Worst == nil || res.Worst.Day != 2 {
		t.Fatalf("best/worst wrong: %+v %+v", res.Best, res.Worst)
	}
	if len(res.Counts) != 4 || res.Counts[0].Mood.Name != "Happy" || res.Counts[0].Count != 2 {
		t.Fatalf("unexpected counts %+v", res.Counts)
	}
	for _, c := range res.Counts {
		if c.Mood.Name == "Angry" {
			t.Fatal("future day counted")
		}
	}
}

func TestJournalRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newService(t)
	if _, err := src.AddMood(ctx, day(t, 3), "Peace"); err != nil {
		t.Fatal(err)
	}
	if _, err := src.AddMood(ctx, day(t, 3), "Period"); err != nil {
		t.Fatal(err)
	}
	if err := src.SetNote(ctx, day(t, 4), "dentist"); err != nil {
		t.Fatal(err)
	}
	lastYear := time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC)
	if _, err := src.AddMood(ctx, lastYear, "Happy"); err != nil {
		t.Fatal(err)
	}

	for _, format := range []string{FormatJSON, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			j, err := src.Export(ctx)
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			if err := EncodeJournal(&buf, j, format); err != nil {
				t.Fatalf("encode: %v", err)
			}
			decoded, err := DecodeJournal(&buf, format)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}

			dst := newService(t)
			res, err := dst.Import(ctx, decoded)
			if err != nil {
				t.Fatalf("import: %v", err)
			}
			if res.Days != 2 || res.Notes != 1 {
				t.Fatalf("unexpected import result %+v", res)
			}
			rec, _ := dst.Day(day(t, 3))
			if names(rec.Moods) != "Peace,Period" {
				t.Fatalf("moods lost or reordered: %s", names(rec.Moods))
			}
			if note, _ := dst.Note(day(t, 4)); note != "dentist" {
				t.Fatalf("note = %q", note)
			}
			rec, _ = dst.Day(lastYear)
			if names(rec.Moods) != "Happy" {
				t.Fatalf("december lost: %s", names(rec.Moods))
			}
		})
	}
}

func TestImportRejectsBadJournal(t *testing.T) {
	svc := newService(t)
	bad := Journal{Version: 1, Months: map[string]JournalMonth{
		"2024-02": {Moods: mood.Month{30: {{Name: "Happy"}}}},
	}}
	if _, err := svc.Import(context.Background(), bad); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("expected ErrInvalidDay, got %v", err)
	}

	unknown := Journal{Version: 1, Months: map[string]JournalMonth{
		"2024-02": {Moods: mood.Month{3: {{Name: "Bored"}}}},
	}}
	if _, err := svc.Import(context.Background(), unknown); !errors.Is(err, mood.ErrUnknownMood) {
		t.Fatalf("expected ErrUnknownMood, got %v", err)
	}
	if months, _ := svc.Months(); len(months) != 0 {
		t.Fatal("rejected import wrote data")
	}

	if _, err := DecodeJournal(strings.NewReader(`{"version": 9}`), FormatJSON); err == nil {
		t.Fatal("expected version error")
	}
}
