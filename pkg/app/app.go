package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/mood/pkg/graph"
	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/store"
	"tableflip.dev/mood/pkg/timeutil"
)

// Service provides the journal operations shared by the CLI, the TUI and
// the MCP server.
type Service struct {
	Store *store.Store
	Log   *zap.Logger
	// Now defaults to time.Now.
	Now func() time.Time
	// Palette colors every chart. Empty fields keep graph.DefaultPalette.
	Palette graph.Palette
}

var (
	ErrNoStore    = errors.New("app: no store configured")
	ErrInvalidDay = errors.New("app: invalid day")
)

// DayRecord is everything recorded on one day.
type DayRecord struct {
	Date  time.Time   `json:"date" yaml:"date"`
	Moods []mood.Mood `json:"moods" yaml:"moods"`
	Note  string      `json:"note,omitempty" yaml:"note,omitempty"`
	Score int         `json:"score" yaml:"score"`
}

// MonthView is a snapshot of one month.
type MonthView struct {
	Month time.Time  `json:"month" yaml:"month"`
	Moods mood.Month `json:"moods" yaml:"moods"`
	Notes mood.Notes `json:"notes" yaml:"notes"`
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) log() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}

func (s *Service) ready() error {
	if s.Store == nil {
		return ErrNoStore
	}
	return nil
}

// Today is midnight of the current day.
func (s *Service) Today() time.Time {
	n := s.now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, n.Location())
}

// Date builds a date from a month and a day, rejecting days the month does
// not have.
func Date(month time.Time, day int) (time.Time, error) {
	if day < 1 || day > timeutil.DaysIn(month) {
		return time.Time{}, fmt.Errorf("%w: %d is not a day of %s", ErrInvalidDay, day, month.Format("January 2006"))
	}
	return time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, month.Location()), nil
}

// ToggleMood adds the named mood to the day, or removes it when already
// present. It reports whether the mood was added.
func (s *Service) ToggleMood(ctx context.Context, date time.Time, name string) (bool, []mood.Mood, error) {
	if err := s.ready(); err != nil {
		return false, nil, err
	}
	m, err := mood.Parse(name)
	if err != nil {
		return false, nil, err
	}
	var added bool
	moods, err := s.Store.Update(ctx, date, date.Day(), func(current []mood.Mood) ([]mood.Mood, bool) {
		var next []mood.Mood
		next, added = mood.Toggle(current, m)
		return next, true
	})
	if err != nil {
		return false, nil, err
	}
	s.log().Debug("toggled mood",
		zap.String("date", date.Format(timeutil.DateLayout)),
		zap.String("mood", m.Name),
		zap.Bool("added", added))
	return added, moods, nil
}

// AddMood records the named mood if the day does not have it yet.
func (s *Service) AddMood(ctx context.Context, date time.Time, name string) ([]mood.Mood, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	m, err := mood.Parse(name)
	if err != nil {
		return nil, err
	}
	moods, err := s.Store.Update(ctx, date, date.Day(), func(current []mood.Mood) ([]mood.Mood, bool) {
		if mood.Has(current, m.Name) {
			return current, false
		}
		return append(current, m), true
	})
	if err != nil {
		return nil, err
	}
	s.log().Debug("added mood", zap.String("date", date.Format(timeutil.DateLayout)), zap.String("mood", m.Name))
	return moods, nil
}

// RemoveMood drops the named mood from the day. Removing a mood that is not
// there is not an error.
func (s *Service) RemoveMood(ctx context.Context, date time.Time, name string) ([]mood.Mood, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	m, err := mood.Parse(name)
	if err != nil {
		return nil, err
	}
	moods, err := s.Store.Update(ctx, date, date.Day(), func(current []mood.Mood) ([]mood.Mood, bool) {
		if !mood.Has(current, m.Name) {
			return current, false
		}
		return mood.Remove(current, m.Name), true
	})
	if err != nil {
		return nil, err
	}
	s.log().Debug("removed mood", zap.String("date", date.Format(timeutil.DateLayout)), zap.String("mood", m.Name))
	return moods, nil
}

// ClearDay removes every mood of the day.
func (s *Service) ClearDay(ctx context.Context, date time.Time) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.Store.Set(ctx, date, date.Day(), nil)
}

// SetNote stores the day's note. Empty text deletes it.
func (s *Service) SetNote(ctx context.Context, date time.Time, text string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.Store.SetNote(ctx, date, date.Day(), text); err != nil {
		return err
	}
	s.log().Debug("set note", zap.String("date", date.Format(timeutil.DateLayout)), zap.Int("length", len(text)))
	return nil
}

// Note returns the day's note.
func (s *Service) Note(date time.Time) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	return s.Store.Note(date, date.Day()), nil
}

// Day returns the day's moods, note and score.
func (s *Service) Day(date time.Time) (DayRecord, error) {
	if err := s.ready(); err != nil {
		return DayRecord{}, err
	}
	moods := s.Store.Get(date, date.Day())
	return DayRecord{
		Date:  date,
		Moods: moods,
		Note:  s.Store.Note(date, date.Day()),
		Score: mood.DayScore(moods),
	}, nil
}

// Month returns a snapshot of the month containing t.
func (s *Service) Month(month time.Time) (MonthView, error) {
	if err := s.ready(); err != nil {
		return MonthView{}, err
	}
	return MonthView{
		Month: timeutil.FirstOfMonth(month),
		Moods: s.Store.Moods(month),
		Notes: s.Store.Notes(month),
	}, nil
}

// Months lists the months holding any data.
func (s *Service) Months() ([]time.Time, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Store.Months(), nil
}

// Analyse builds the score chart of a month as of now.
func (s *Service) Analyse(month time.Time, opts ...graph.Option) (*graph.Chart, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if s.Palette != (graph.Palette{}) {
		opts = append([]graph.Option{graph.WithPalette(s.Palette)}, opts...)
	}
	return graph.Build(s.Store.Moods(month), graph.NewViewContext(month, s.now()), opts...)
}

// Watch follows changes made by other processes.
func (s *Service) Watch(ctx context.Context) (<-chan store.Change, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Store.Watch(ctx)
}
