// Command demo fills the configured journal with a sample month so the
// calendar and the chart have something to show.
package main

import (
	"context"
	"fmt"
	"log"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/logging"
	"tableflip.dev/mood/pkg/store"
	"tableflip.dev/mood/pkg/timeutil"
)

var sample = []struct {
	day   int
	moods []string
	note  string
}{
	{1, []string{"Happy", "Relax"}, "slow start"},
	{2, []string{"Tired"}, ""},
	{3, []string{"Stress", "Procrastination"}, "deadline"},
	{5, []string{"Brave"}, "gave the talk"},
	{6, []string{"Peace", "Relax"}, ""},
	{8, []string{"Sad", "Anxiety/Panic"}, ""},
	{9, []string{"Uncomfortable"}, ""},
	{11, []string{"Happy"}, "picnic"},
	{12, []string{"Happy", "Brave", "Relax"}, ""},
}

func main() {
	ctx := context.Background()

	cfg, err := store.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		log.Fatal(err)
	}
	st, err := store.Open(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = st.Close() }()
	if err := st.Load(ctx); err != nil {
		log.Fatal(err)
	}

	svc := &app.Service{Store: st, Log: logger}
	month := timeutil.FirstOfMonth(svc.Today()).AddDate(0, -1, 0)
	for _, s := range sample {
		date, err := app.Date(month, s.day)
		if err != nil {
			log.Fatal(err)
		}
		for _, name := range s.moods {
			if _, err := svc.AddMood(ctx, date, name); err != nil {
				log.Fatal(err)
			}
		}
		if s.note != "" {
			if err := svc.SetNote(ctx, date, s.note); err != nil {
				log.Fatal(err)
			}
		}
	}

	rec, err := svc.Report(month)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("seeded %s: %d days, total %+d\n", month.Format(timeutil.MonthLayout), rec.RecordedDays, rec.Total)
}
