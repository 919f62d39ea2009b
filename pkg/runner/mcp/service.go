// Package mcp provides the Model Context Protocol server integration for mood.
package mcp

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/chart"
	"tableflip.dev/mood/pkg/graph"
	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/timeutil"
)

// Graph formats understood by RenderGraph.
const (
	GraphSVG  = "svg"
	GraphPNG  = "png"
	GraphText = "text"
)

// ErrNoService is returned when the runner was built without a journal.
var ErrNoService = errors.New("mcp: journal service is not configured")

// Service adapts the journal operations to MCP friendly inputs and outputs.
type Service struct {
	App *app.Service
}

// NewService wraps a journal service.
func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

// DayDTO is a transport-friendly projection of one day.
type DayDTO struct {
	Date  string      `json:"date"`
	Moods []mood.Mood `json:"moods"`
	Note  string      `json:"note,omitempty"`
	Score int         `json:"score"`
}

// ToggleDTO reports the outcome of a toggle.
type ToggleDTO struct {
	DayDTO
	Mood  string `json:"mood"`
	Added bool   `json:"added"`
}

// MonthDTO lists the recorded days of a month.
type MonthDTO struct {
	Month string   `json:"month"`
	Days  []DayDTO `json:"days"`
	Count int      `json:"count"`
}

// ScoresDTO is the analytics view of a month.
type ScoresDTO struct {
	Month   string             `json:"month"`
	LastDay int                `json:"lastDay"`
	Max     int                `json:"max"`
	Min     int                `json:"min"`
	Points  []graph.ScorePoint `json:"points"`
	Total   int                `json:"total"`
	Help    []string           `json:"help"`
}

// Graph is a rendered chart. Data is base64 for PNG and plain text
// otherwise.
type Graph struct {
	Format   string
	MIMEType string
	Data     string
}

func (s *Service) ready() error {
	if s == nil || s.App == nil {
		return ErrNoService
	}
	return nil
}

func (s *Service) now() time.Time {
	if s.App.Now != nil {
		return s.App.Now()
	}
	return time.Now()
}

// ParseDate resolves a date argument relative to now.
func (s *Service) ParseDate(raw string) (time.Time, error) {
	if err := s.ready(); err != nil {
		return time.Time{}, err
	}
	return timeutil.ParseDate(raw, s.now())
}

// ParseMonth resolves a month argument relative to now.
func (s *Service) ParseMonth(raw string) (time.Time, error) {
	if err := s.ready(); err != nil {
		return time.Time{}, err
	}
	return timeutil.ParseMonth(raw, s.now())
}

// ToggleMood flips a mood on the given date.
func (s *Service) ToggleMood(ctx context.Context, date, name string) (*ToggleDTO, error) {
	when, err := s.ParseDate(date)
	if err != nil {
		return nil, err
	}
	added, _, err := s.App.ToggleMood(ctx, when, name)
	if err != nil {
		return nil, err
	}
	day, err := s.day(when)
	if err != nil {
		return nil, err
	}
	m, _ := mood.Lookup(name)
	return &ToggleDTO{DayDTO: *day, Mood: m.Name, Added: added}, nil
}

// RemoveMood drops a mood from the given date.
func (s *Service) RemoveMood(ctx context.Context, date, name string) (*DayDTO, error) {
	when, err := s.ParseDate(date)
	if err != nil {
		return nil, err
	}
	if _, err := s.App.RemoveMood(ctx, when, name); err != nil {
		return nil, err
	}
	return s.day(when)
}

// SetNote replaces the note of the given date. Empty text deletes it.
func (s *Service) SetNote(ctx context.Context, date, text string) (*DayDTO, error) {
	when, err := s.ParseDate(date)
	if err != nil {
		return nil, err
	}
	if err := s.App.SetNote(ctx, when, strings.TrimSpace(text)); err != nil {
		return nil, err
	}
	return s.day(when)
}

// GetDay returns one day.
func (s *Service) GetDay(date string) (*DayDTO, error) {
	when, err := s.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return s.day(when)
}

func (s *Service) day(when time.Time) (*DayDTO, error) {
	rec, err := s.App.Day(when)
	if err != nil {
		return nil, err
	}
	return toDayDTO(rec), nil
}

func toDayDTO(rec app.DayRecord) *DayDTO {
	moods := rec.Moods
	if moods == nil {
		moods = []mood.Mood{}
	}
	return &DayDTO{
		Date:  rec.Date.Format(timeutil.DateLayout),
		Moods: moods,
		Note:  rec.Note,
		Score: rec.Score,
	}
}

// GetMonth lists every day of the month that has moods or a note.
func (s *Service) GetMonth(month string) (*MonthDTO, error) {
	when, err := s.ParseMonth(month)
	if err != nil {
		return nil, err
	}
	view, err := s.App.Month(when)
	if err != nil {
		return nil, err
	}

	out := &MonthDTO{Month: view.Month.Format(timeutil.MonthLayout), Days: []DayDTO{}}
	for d := 1; d <= timeutil.DaysIn(view.Month); d++ {
		moods, note := view.Moods.Day(d), view.Notes[d]
		if len(moods) == 0 && note == "" {
			continue
		}
		date, _ := app.Date(view.Month, d)
		out.Days = append(out.Days, *toDayDTO(app.DayRecord{
			Date:  date,
			Moods: moods,
			Note:  note,
			Score: mood.DayScore(moods),
		}))
	}
	out.Count = len(out.Days)
	return out, nil
}

// MonthScores returns the elapsed daily scores and axis bounds of a month.
func (s *Service) MonthScores(month string) (*ScoresDTO, error) {
	when, err := s.ParseMonth(month)
	if err != nil {
		return nil, err
	}
	c, err := s.App.Analyse(when)
	if err != nil {
		return nil, err
	}
	out := &ScoresDTO{
		Month:   c.View.Month.Format(timeutil.MonthLayout),
		LastDay: c.View.LastDay,
		Max:     c.Bounds.Max,
		Min:     c.Bounds.Min,
		Points:  c.Elapsed,
		Help:    mood.ScoreHelp(),
	}
	if out.Points == nil {
		out.Points = []graph.ScorePoint{}
	}
	for _, p := range c.Elapsed {
		out.Total += p.Score
	}
	return out, nil
}

// RenderGraph draws the month's chart in the requested format.
func (s *Service) RenderGraph(month, format string) (*Graph, error) {
	when, err := s.ParseMonth(month)
	if err != nil {
		return nil, err
	}
	c, err := s.App.Analyse(when)
	if err != nil {
		return nil, err
	}

	opts := chart.Options{Help: mood.ScoreHelp()}
	var buf bytes.Buffer
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "", GraphSVG:
		if err := chart.SVG(&buf, c, opts); err != nil {
			return nil, err
		}
		return &Graph{Format: GraphSVG, MIMEType: "image/svg+xml", Data: buf.String()}, nil
	case GraphPNG:
		if err := chart.PNG(&buf, c, chart.PNGOptions{Options: opts}); err != nil {
			return nil, err
		}
		return &Graph{
			Format:   GraphPNG,
			MIMEType: "image/png",
			Data:     base64.StdEncoding.EncodeToString(buf.Bytes()),
		}, nil
	case GraphText:
		return &Graph{Format: GraphText, MIMEType: "text/plain", Data: chart.Terminal(c, chart.TerminalOptions{})}, nil
	default:
		return nil, fmt.Errorf("mcp: unknown graph format %q (expected svg, png or text)", format)
	}
}

// Months lists the months holding data.
func (s *Service) Months() ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	months, err := s.App.Months()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(months))
	for i, m := range months {
		out[i] = m.Format(timeutil.MonthLayout)
	}
	return out, nil
}
