// Package calendar renders a month of moods as a week grid.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/timeutil"
)

// Weekdays is the header order; weeks start on Sunday.
var Weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Day describes a single day rendered in the calendar.
type Day struct {
	Day        int
	Moods      []mood.Mood
	Note       string
	Score      int
	IsToday    bool
	IsSelected bool
	IsFuture   bool
}

// HasEntry reports whether anything was recorded on the day.
func (d Day) HasEntry() bool {
	return len(d.Moods) > 0 || d.Note != ""
}

// Options controls calendar styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	EntryStyle    lipgloss.Style
	FutureStyle   lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	NoteStyle     lipgloss.Style
	// CellWidth is the width of one day column in cells.
	CellWidth  int
	ShowHeader bool
	// Compact draws only the day numbers, one line per week.
	Compact bool
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	return Options{
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		EmptyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		EntryStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		FutureStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		TodayStyle:    lipgloss.NewStyle().Underline(true).Bold(true),
		SelectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		NoteStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("246")).Italic(true),
		CellWidth:     10,
		ShowHeader:    true,
	}
}

// Days describes every day of month from the stored moods and notes.
// selected may be 0 for no selection.
func Days(month time.Time, set mood.Month, notes mood.Notes, now time.Time, selected int) []Day {
	first := timeutil.FirstOfMonth(month)
	thisMonth := timeutil.FirstOfMonth(now)
	n := timeutil.DaysIn(first)

	out := make([]Day, n)
	for i := range out {
		day := i + 1
		moods := set.Day(day)
		d := Day{
			Day:        day,
			Moods:      moods,
			Note:       notes[day],
			Score:      mood.DayScore(moods),
			IsSelected: day == selected,
		}
		switch {
		case first.Equal(thisMonth):
			d.IsToday = day == now.Day()
			d.IsFuture = day > now.Day()
		case first.After(thisMonth):
			d.IsFuture = true
		}
		out[i] = d
	}
	return out
}

// Weeks lays the days of month out in Sunday first rows. Cells outside the
// month are 0.
func Weeks(month time.Time) [][]int {
	first := timeutil.FirstOfMonth(month)
	daysInMonth := timeutil.DaysIn(first)
	offset := int(first.Weekday())
	rows := (offset + daysInMonth + 6) / 7

	out := make([][]int, rows)
	for row := range out {
		out[row] = make([]int, 7)
		for col := 0; col < 7; col++ {
			day := row*7 + col - offset + 1
			if day >= 1 && day <= daysInMonth {
				out[row][col] = day
			}
		}
	}
	return out
}

// Locate returns the row and column of day, or false when the month does
// not have it.
func Locate(month time.Time, day int) (int, int, bool) {
	for r, week := range Weeks(month) {
		for c, d := range week {
			if d != 0 && d == day {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Render produces a multi-line calendar string for the given month.
func Render(month time.Time, days []Day, opts Options) string {
	if month.IsZero() {
		return ""
	}
	if opts.CellWidth < 3 {
		opts.CellWidth = 3
	}

	byDay := make(map[int]Day, len(days))
	for _, d := range days {
		byDay[d.Day] = d
	}

	var lines []string
	if opts.ShowHeader {
		lines = append(lines, header(opts))
	}
	for _, week := range Weeks(month) {
		if opts.Compact {
			lines = append(lines, compactRow(week, byDay, opts))
			continue
		}
		cells := make([]string, len(week))
		for i, day := range week {
			cells[i] = renderCell(day, byDay[day], opts)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n")
}

func header(opts Options) string {
	if opts.Compact {
		names := make([]string, len(Weekdays))
		for i, w := range Weekdays {
			names[i] = w[:2]
		}
		return opts.HeaderStyle.Render(strings.Join(names, " "))
	}
	cells := make([]string, len(Weekdays))
	for i, w := range Weekdays {
		cells[i] = opts.HeaderStyle.Width(opts.CellWidth).Render(fit(w, opts.CellWidth-1))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func compactRow(week []int, byDay map[int]Day, opts Options) string {
	cells := make([]string, len(week))
	for i, day := range week {
		if day == 0 {
			cells[i] = "  "
			continue
		}
		cells[i] = dayStyle(byDay[day], opts).Render(fmt.Sprintf("%2d", day))
	}
	return strings.TrimRight(strings.Join(cells, " "), " ")
}

func renderCell(day int, info Day, opts Options) string {
	cell := lipgloss.NewStyle().Width(opts.CellWidth)
	if day == 0 {
		return cell.Render(strings.Repeat(" ", opts.CellWidth) + "\n\n")
	}

	inner := opts.CellWidth - 1
	number := dayStyle(info, opts).Render(fmt.Sprintf("%2d", day))

	emojis := make([]string, len(info.Moods))
	for i, m := range info.Moods {
		emojis[i] = m.Emoji
	}
	note := ""
	if info.Note != "" {
		note = opts.NoteStyle.Render(fit(firstLine(info.Note), inner))
	}

	return cell.Render(strings.Join([]string{
		number,
		fit(strings.Join(emojis, ""), inner),
		note,
	}, "\n"))
}

func dayStyle(info Day, opts Options) lipgloss.Style {
	style := opts.EmptyStyle
	switch {
	case info.IsFuture:
		style = opts.FutureStyle
	case info.HasEntry():
		style = opts.EntryStyle
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style
}

// fit truncates s to width cells, marking the cut with an ellipsis.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i]) + "…"
	}
	return s
}
