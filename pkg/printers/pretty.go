package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/mood"
)

// PrettyPrint writes human readable output.
type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Score colors a signed score: positive pink-ish magenta, negative cyan.
func Score(score int) string {
	switch {
	case score > 0:
		return color.New(color.FgHiMagenta).Sprintf("%+d", score)
	case score < 0:
		return color.New(color.FgHiCyan).Sprintf("%+d", score)
	default:
		return color.New(color.Faint).Sprint("0")
	}
}

// Moods joins moods as "emoji name".
func Moods(moods []mood.Mood) string {
	if len(moods) == 0 {
		return color.New(color.Faint, color.Italic).Sprint("none")
	}
	parts := make([]string, len(moods))
	for i, m := range moods {
		parts[i] = m.String()
	}
	return strings.Join(parts, ", ")
}

// Day prints one day.
func (pp *PrettyPrint) Day(rec app.DayRecord) {
	pp.Title(rec.Date.Format("Monday, January 2 2006"))

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = 72
	tbl.AddRow("moods", Moods(rec.Moods))
	tbl.AddRow("score", Score(rec.Score))
	if rec.Note != "" {
		tbl.AddRow("note", rec.Note)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Toggled reports the outcome of a toggle.
func (pp *PrettyPrint) Toggled(date string, m mood.Mood, added bool, moods []mood.Mood) {
	verb := color.New(color.FgGreen).Sprint("added")
	if !added {
		verb = color.New(color.FgYellow).Sprint("removed")
	}
	_, _ = fmt.Fprintf(pp.out(), "%s %s on %s: %s\n", verb, m.String(), date, Moods(moods))
}

// Catalog prints every mood with its weight.
func (pp *PrettyPrint) Catalog() {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("Mood"), bold.Sprint("Category"), bold.Sprint("Score"))
	for _, m := range mood.Catalog() {
		tbl.AddRow(m.Emoji, m.Name, string(m.Category), Score(mood.ScoreOf(m.Name)))
	}
	tbl.RightAlign(3)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	faint := color.New(color.Faint)
	for _, line := range mood.ScoreHelp() {
		_, _ = faint.Fprintln(pp.out(), line)
	}
}

// Report prints a month summary.
func (pp *PrettyPrint) Report(res app.ReportResult) {
	pp.Title("Report · " + res.Month.Format("January 2006"))

	if res.RecordedDays == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(pp.out(), "  No moods recorded this month.")
		pp.NewLine()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("recorded days", res.RecordedDays)
	tbl.AddRow("positive", res.PositiveDays)
	tbl.AddRow("neutral", res.NeutralDays)
	tbl.AddRow("negative", res.NegativeDays)
	tbl.AddRow("total", Score(res.Total))
	if res.Best != nil {
		tbl.AddRow("best day", fmt.Sprintf("%d (%s)", res.Best.Day, Score(res.Best.Score)))
	}
	if res.Worst != nil {
		tbl.AddRow("worst day", fmt.Sprintf("%d (%s)", res.Worst.Day, Score(res.Worst.Score)))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	bold := color.New(color.Bold)
	counts := uitable.New()
	counts.Separator = "  "
	counts.AddRow("", bold.Sprint("Mood"), bold.Sprint("Days"), bold.Sprint("Score"))
	for _, c := range res.Counts {
		counts.AddRow(c.Mood.Emoji, c.Mood.Name, c.Count, Score(c.Score))
	}
	counts.RightAlign(2)
	_, _ = fmt.Fprintln(pp.out(), counts)
	pp.NewLine()
}

// Months lists the months holding data.
func (pp *PrettyPrint) Months(months []string) {
	if len(months) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(pp.out(), " none")
		return
	}
	for _, m := range months {
		_, _ = fmt.Fprintln(pp.out(), m)
	}
}
