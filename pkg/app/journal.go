package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/timeutil"
)

// JournalVersion is written into every export.
const JournalVersion = 1

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Journal is the whole store in a portable form.
type Journal struct {
	Version int                     `json:"version" yaml:"version"`
	Months  map[string]JournalMonth `json:"months" yaml:"months"`
}

// JournalMonth is one month of a Journal, keyed by 2006-01 in Months.
type JournalMonth struct {
	Moods mood.Month `json:"moods,omitempty" yaml:"moods,omitempty"`
	Notes mood.Notes `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Export snapshots every month.
func (s *Service) Export(_ context.Context) (Journal, error) {
	if err := s.ready(); err != nil {
		return Journal{}, err
	}
	j := Journal{Version: JournalVersion, Months: make(map[string]JournalMonth)}
	for _, month := range s.Store.Months() {
		j.Months[month.Format(timeutil.MonthLayout)] = JournalMonth{
			Moods: s.Store.Moods(month),
			Notes: s.Store.Notes(month),
		}
	}
	return j, nil
}

// ImportResult counts what Import wrote.
type ImportResult struct {
	Days  int `json:"days"`
	Notes int `json:"notes"`
}

// Import writes every day and note of j into the store, replacing what
// those days held. Mood names are resolved against the catalog first so a
// bad file is rejected before anything is written.
func (s *Service) Import(ctx context.Context, j Journal) (ImportResult, error) {
	if err := s.ready(); err != nil {
		return ImportResult{}, err
	}

	type day struct {
		date  time.Time
		moods []mood.Mood
	}
	type note struct {
		date time.Time
		text string
	}
	var (
		days  []day
		notes []note
	)

	keys := make([]string, 0, len(j.Months))
	for k := range j.Months {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		month, err := time.ParseInLocation(timeutil.MonthLayout, key, s.now().Location())
		if err != nil {
			return ImportResult{}, fmt.Errorf("app: import month %q: %w", key, err)
		}
		jm := j.Months[key]
		for d, moods := range jm.Moods {
			date, err := Date(month, d)
			if err != nil {
				return ImportResult{}, fmt.Errorf("app: import %s: %w", key, err)
			}
			resolved := make([]mood.Mood, 0, len(moods))
			for _, m := range moods {
				cm, err := mood.Parse(m.Name)
				if err != nil {
					return ImportResult{}, fmt.Errorf("app: import %s: %w", date.Format(timeutil.DateLayout), err)
				}
				if !mood.Has(resolved, cm.Name) {
					resolved = append(resolved, cm)
				}
			}
			days = append(days, day{date: date, moods: resolved})
		}
		for d, text := range jm.Notes {
			date, err := Date(month, d)
			if err != nil {
				return ImportResult{}, fmt.Errorf("app: import %s: %w", key, err)
			}
			notes = append(notes, note{date: date, text: text})
		}
	}

	var res ImportResult
	for _, d := range days {
		if err := s.Store.Set(ctx, d.date, d.date.Day(), d.moods); err != nil {
			return res, err
		}
		res.Days++
	}
	for _, n := range notes {
		if err := s.Store.SetNote(ctx, n.date, n.date.Day(), n.text); err != nil {
			return res, err
		}
		res.Notes++
	}
	return res, nil
}

// EncodeJournal writes j as JSON or YAML.
func EncodeJournal(w io.Writer, j Journal, format string) error {
	switch strings.ToLower(format) {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(j)
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(j); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("app: unknown journal format %q", format)
	}
}

// DecodeJournal reads a journal written by EncodeJournal.
func DecodeJournal(r io.Reader, format string) (Journal, error) {
	var j Journal
	switch strings.ToLower(format) {
	case FormatJSON, "":
		if err := json.NewDecoder(r).Decode(&j); err != nil {
			return Journal{}, fmt.Errorf("app: decode journal: %w", err)
		}
	case FormatYAML, "yml":
		if err := yaml.NewDecoder(r).Decode(&j); err != nil {
			return Journal{}, fmt.Errorf("app: decode journal: %w", err)
		}
	default:
		return Journal{}, fmt.Errorf("app: unknown journal format %q", format)
	}
	if j.Version > JournalVersion {
		return Journal{}, fmt.Errorf("app: journal version %d is newer than %d", j.Version, JournalVersion)
	}
	return j, nil
}
