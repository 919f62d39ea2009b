// Package timeutil parses the loose month and day references accepted on
// the command line and by the MCP tools.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// MonthLayout is the canonical month form, 2024-03.
	MonthLayout = "2006-01"
	// DateLayout is the canonical day form, 2024-03-05.
	DateLayout = "2006-01-02"
)

var (
	offsetPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	offsetUnits   = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
	monthLayouts = []string{MonthLayout, "January 2006", "Jan 2006", "2006/01", "01/2006"}
)

// ParseOffset parses a backwards offset such as "3d", "1w" or "1w2d" and
// returns it in days.
func ParseOffset(input string) (int, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	remaining = strings.TrimSuffix(remaining, "ago")
	remaining = strings.TrimSpace(remaining)
	if remaining == "" {
		return 0, fmt.Errorf("empty offset")
	}

	total := 0
	for len(remaining) > 0 {
		matches := offsetPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid offset segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("invalid offset value %q: %w", matches[1], err)
		}
		days, ok := offsetUnits[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported offset unit %q", matches[2])
		}
		total += value * days
		remaining = strings.TrimSpace(remaining[len(matches[0]):])
	}
	return total, nil
}

// FormatOffset renders days using week and day tokens, e.g. 9 -> "1w2d".
func FormatOffset(days int) string {
	if days <= 0 {
		return "0d"
	}
	var b strings.Builder
	if w := days / 7; w > 0 {
		fmt.Fprintf(&b, "%dw", w)
	}
	if d := days % 7; d > 0 {
		fmt.Fprintf(&b, "%dd", d)
	}
	return b.String()
}

// FirstOfMonth truncates t to midnight on the first of its month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// ParseMonth resolves a month reference relative to now. Accepted forms
// are "", "this", "last", "prev", "next", "2024-03", "March 2024" and
// "Mar 2024". The result is the first of the month in now's location.
func ParseMonth(input string, now time.Time) (time.Time, error) {
	current := FirstOfMonth(now)
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "this", "current", "now":
		return current, nil
	case "last", "prev", "previous":
		return current.AddDate(0, -1, 0), nil
	case "next":
		return current.AddDate(0, 1, 0), nil
	}
	for _, layout := range monthLayouts {
		if t, err := time.ParseInLocation(layout, strings.TrimSpace(input), now.Location()); err == nil {
			return FirstOfMonth(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised month %q (want YYYY-MM)", input)
}

// ParseDate resolves a day reference relative to now. Accepted forms are
// "", "today", "yesterday", "2024-03-05", a bare day of the current month
// such as "12", and offsets such as "3d" or "1w ago".
func ParseDate(input string, now time.Time) (time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	trimmed := strings.ToLower(strings.TrimSpace(input))
	switch trimmed {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}
	if t, err := time.ParseInLocation(DateLayout, trimmed, now.Location()); err == nil {
		return t, nil
	}
	if day, err := strconv.Atoi(trimmed); err == nil {
		if day < 1 || day > DaysIn(now) {
			return time.Time{}, fmt.Errorf("day %d is not in %s", day, now.Format("January 2006"))
		}
		return time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location()), nil
	}
	if days, err := ParseOffset(trimmed); err == nil {
		return today.AddDate(0, 0, -days), nil
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q (want YYYY-MM-DD, a day number or an offset like 2d)", input)
}

// DaysIn returns the number of days in the month containing t.
func DaysIn(t time.Time) int {
	return FirstOfMonth(t).AddDate(0, 1, -1).Day()
}
