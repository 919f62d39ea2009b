package printers

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/calendar"
)

// ColorEnabled reports whether w is a terminal that should get escape
// sequences. NO_COLOR and a dumb TERM turn color off.
func ColorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	if termenv.EnvNoColor() {
		return false
	}
	return termenv.NewOutput(f).EnvColorProfile() != termenv.Ascii
}

// ConfigureColor sets fatih/color's global switch for stdout.
func ConfigureColor() {
	color.NoColor = !ColorEnabled(os.Stdout)
}

// Calendar prints a month grid with moods and note previews.
func (pp *PrettyPrint) Calendar(view app.MonthView, now time.Time, compact bool) {
	opts := calendar.DefaultOptions()
	opts.Compact = compact

	pp.Title(view.Month.Format("January 2006"))
	days := calendar.Days(view.Month, view.Moods, view.Notes, now, 0)
	out := calendar.Render(view.Month, days, opts)
	if color.NoColor {
		out = ansi.Strip(out)
	}
	_, _ = fmt.Fprintln(pp.out(), out)
}
