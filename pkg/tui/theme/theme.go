package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/mood/pkg/calendar"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header    HeaderTheme
	Footer    FooterTheme
	Panel     PanelTheme
	Analytics AnalyticsTheme
	Calendar  calendar.Options
}

// HeaderTheme styles the title line above the calendar.
type HeaderTheme struct {
	App   lipgloss.Style
	Month lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// PanelTheme styles the day detail, picker and note editor panels.
type PanelTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Body     lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
}

// AnalyticsTheme styles the draggable chart overlay.
type AnalyticsTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Close lipgloss.Style
	Help  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	return Theme{
		Header: HeaderTheme{
			App:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Month: lipgloss.NewStyle().Bold(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: muted,
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title:    lipgloss.NewStyle().Bold(true),
			Body:     lipgloss.NewStyle(),
			Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("150")),
			Muted:    muted,
		},
		Analytics: AnalyticsTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("63")).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Close: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
			Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		Calendar: calendar.DefaultOptions(),
	}
}
