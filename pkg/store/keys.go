package store

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/mood/pkg/timeutil"
)

// MonthLayout is how months appear in keys and on the command line.
const MonthLayout = timeutil.MonthLayout

// Kind is the kind of data a key holds.
type Kind string

const (
	KindMoods Kind = "moods"
	KindNotes Kind = "notes"
)

// MonthKey formats the month of t.
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// Key names the blob holding one kind of data for one month, for example
// moods-2024-03.
func Key(kind Kind, month time.Time) string {
	return string(kind) + "-" + MonthKey(month)
}

// ParseKey splits a key made by Key. The month is returned in UTC.
func ParseKey(key string) (Kind, time.Time, error) {
	kind, rest, ok := strings.Cut(key, "-")
	if !ok {
		return "", time.Time{}, fmt.Errorf("store: malformed key %q", key)
	}
	switch Kind(kind) {
	case KindMoods, KindNotes:
	default:
		return "", time.Time{}, fmt.Errorf("store: unknown kind in key %q", key)
	}
	month, err := time.Parse(MonthLayout, rest)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("store: bad month in key %q: %w", key, err)
	}
	return Kind(kind), month, nil
}
