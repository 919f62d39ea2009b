// Package tui is the interactive mood journal: a month calendar with a mood
// picker, a note editor and a draggable analytics overlay.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/calendar"
	"tableflip.dev/mood/pkg/drag"
	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/store"
	"tableflip.dev/mood/pkg/timeutil"
	"tableflip.dev/mood/pkg/tui/overlay"
	"tableflip.dev/mood/pkg/tui/theme"
)

type mode int

const (
	modeCalendar mode = iota
	modePicker
	modeNote
)

// Rows above the calendar's weekday header: the title and a blank line.
const calendarTop = 2

// Model is the root Bubble Tea model.
type Model struct {
	ctx   context.Context
	svc   *app.Service
	theme theme.Theme

	width  int
	height int

	month    time.Time
	selected int
	view     app.MonthView

	mode   mode
	cursor int
	note   textinput.Model

	analyticsOpen bool
	drag          drag.Controller

	status    string
	statusErr bool

	watchCh     <-chan store.Change
	watchCancel context.CancelFunc
}

// New constructs a model showing the current month with today selected.
func New(ctx context.Context, svc *app.Service) *Model {
	ti := textinput.New()
	ti.Placeholder = "How was the day?"
	ti.CharLimit = 512
	ti.Prompt = "> "
	ti.VirtualCursor = true

	today := svc.Today()
	m := &Model{
		ctx:      ctx,
		svc:      svc,
		theme:    theme.Default(),
		month:    timeutil.FirstOfMonth(today),
		selected: today.Day(),
		note:     ti,
	}
	m.refresh()
	return m
}

// Run launches the Bubble Tea program until the user quits or ctx ends.
func Run(ctx context.Context, svc *app.Service) error {
	p := tea.NewProgram(New(ctx, svc),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.svc)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case watchStartedMsg:
		if msg.err != nil {
			m.setError(fmt.Errorf("watch: %w", msg.err))
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.handleWatchEvent(msg.change)
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		if m.ctx.Err() == nil {
			cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
		}
	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if mouse.Button == tea.MouseLeft {
			m.handlePress(mouse.X, mouse.Y)
		}
	case tea.MouseMotionMsg:
		mouse := msg.Mouse()
		m.drag.Move(drag.Point{X: float64(mouse.X), Y: float64(mouse.Y)})
	case tea.MouseReleaseMsg:
		m.drag.Release()
	case tea.BlurMsg:
		m.drag.Leave()
	case tea.KeyPressMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.stopWatch()
		return tea.Quit
	}
	switch m.mode {
	case modePicker:
		m.handlePickerKey(msg)
		return nil
	case modeNote:
		return m.handleNoteKey(msg)
	}

	if m.analyticsOpen {
		switch msg.String() {
		case "esc", "a":
			m.closeAnalytics()
			return nil
		}
	}

	switch msg.String() {
	case "q":
		m.stopWatch()
		return tea.Quit
	case "left":
		m.moveDays(-1)
	case "right":
		m.moveDays(1)
	case "up":
		m.moveDays(-7)
	case "down":
		m.moveDays(7)
	case "h", "[":
		m.setMonth(m.month.AddDate(0, -1, 0))
	case "l", "]":
		m.setMonth(m.month.AddDate(0, 1, 0))
	case "t":
		today := m.svc.Today()
		m.setMonth(today)
		m.selected = today.Day()
	case "enter", "space", " ":
		m.mode = modePicker
		m.cursor = 0
	case "n":
		m.mode = modeNote
		m.note.SetValue(m.view.Notes[m.selected])
		m.note.CursorEnd()
		return m.note.Focus()
	case "a":
		m.openAnalytics()
	}
	return nil
}

func (m *Model) handlePickerKey(msg tea.KeyPressMsg) {
	catalog := mood.Catalog()
	switch msg.String() {
	case "esc", "q":
		m.mode = modeCalendar
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(catalog)-1 {
			m.cursor++
		}
	case "enter", "space", " ":
		m.toggle(catalog[m.cursor])
	}
}

func (m *Model) handleNoteKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.mode = modeCalendar
		m.note.Blur()
		return nil
	case "enter":
		m.mode = modeCalendar
		m.note.Blur()
		m.saveNote(m.note.Value())
		return nil
	}
	var cmd tea.Cmd
	m.note, cmd = m.note.Update(msg)
	return cmd
}

func (m *Model) handlePress(x, y int) {
	if m.analyticsOpen && m.handleAnalyticsPress(x, y) {
		return
	}
	if m.mode != modeCalendar {
		return
	}
	if day := m.dayAt(x, y); day > 0 {
		m.selected = day
	}
}

// dayAt maps a screen cell to the day drawn there, or 0.
func (m *Model) dayAt(x, y int) int {
	row := y - calendarTop - 1
	width := m.theme.Calendar.CellWidth
	if row < 0 || x < 0 || width <= 0 {
		return 0
	}
	weeks := calendar.Weeks(m.month)
	week, col := row/3, x/width
	if week >= len(weeks) || col >= 7 {
		return 0
	}
	return weeks[week][col]
}

func (m *Model) selectedDate() time.Time {
	date, err := app.Date(m.month, m.selected)
	if err != nil {
		return m.month
	}
	return date
}

func (m *Model) moveDays(delta int) {
	date := m.selectedDate().AddDate(0, 0, delta)
	if first := timeutil.FirstOfMonth(date); !first.Equal(m.month) {
		m.month = first
		m.refresh()
	}
	m.selected = date.Day()
}

func (m *Model) setMonth(t time.Time) {
	m.month = timeutil.FirstOfMonth(t)
	if n := timeutil.DaysIn(m.month); m.selected > n {
		m.selected = n
	}
	if m.selected < 1 {
		m.selected = 1
	}
	m.refresh()
}

func (m *Model) refresh() {
	view, err := m.svc.Month(m.month)
	if err != nil {
		m.setError(err)
		return
	}
	m.view = view
}

func (m *Model) toggle(md mood.Mood) {
	added, _, err := m.svc.ToggleMood(m.ctx, m.selectedDate(), md.Name)
	if err != nil {
		m.setError(err)
		return
	}
	m.refresh()
	if added {
		m.setStatus("Added " + md.String())
	} else {
		m.setStatus("Removed " + md.String())
	}
}

func (m *Model) saveNote(text string) {
	text = strings.TrimSpace(text)
	if err := m.svc.SetNote(m.ctx, m.selectedDate(), text); err != nil {
		m.setError(err)
		return
	}
	m.refresh()
	if text == "" {
		m.setStatus("Note cleared")
	} else {
		m.setStatus("Note saved")
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = "ERR: " + err.Error()
	m.statusErr = true
}

// screen is the terminal size, with a fallback before the first resize.
func (m *Model) screen() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}

// View implements tea.Model.
func (m *Model) View() string {
	base := m.baseView()
	if !m.analyticsOpen {
		return base
	}
	w, h := m.screen()
	v := m.renderAnalytics()
	return overlay.Compose(base, w, h, v.content, m.analyticsPlacement())
}

func (m *Model) baseView() string {
	th := m.theme
	header := th.Header.App.Render("mood") + "  " + th.Header.Month.Render(m.month.Format("January 2006"))

	days := calendar.Days(m.month, m.view.Moods, m.view.Notes, m.svc.Today(), m.selected)
	sections := []string{
		header,
		"",
		calendar.Render(m.month, days, th.Calendar),
		"",
	}

	switch m.mode {
	case modePicker:
		sections = append(sections, m.pickerView())
	case modeNote:
		sections = append(sections, m.noteView())
	default:
		sections = append(sections, m.dayView())
	}
	sections = append(sections, m.footerView())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) dayView() string {
	th := m.theme.Panel
	moods := m.view.Moods.Day(m.selected)

	lines := []string{th.Title.Render(m.selectedDate().Format("Monday, January 2"))}
	if len(moods) == 0 {
		lines = append(lines, th.Muted.Render("No moods"))
	} else {
		names := make([]string, len(moods))
		for i, md := range moods {
			names[i] = md.String()
		}
		lines = append(lines, strings.Join(names, "  "))
	}
	lines = append(lines, th.Muted.Render(fmt.Sprintf("score %+d", mood.DayScore(moods))))
	if note := m.view.Notes[m.selected]; note != "" {
		lines = append(lines, th.Body.Render("note: "+note))
	}
	return th.Frame.Render(strings.Join(lines, "\n"))
}

func (m *Model) pickerView() string {
	th := m.theme.Panel
	current := m.view.Moods.Day(m.selected)

	lines := []string{th.Title.Render("Moods for " + m.selectedDate().Format("January 2"))}
	for i, md := range mood.Catalog() {
		mark := "  "
		if mood.Has(current, md.Name) {
			mark = th.Selected.Render("✓ ")
		}
		row := fmt.Sprintf("%s%s", mark, md.String())
		if i == m.cursor {
			row = th.Cursor.Render("› ") + row
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}
	return th.Frame.Render(strings.Join(lines, "\n"))
}

func (m *Model) noteView() string {
	th := m.theme.Panel
	lines := []string{
		th.Title.Render("Note for " + m.selectedDate().Format("January 2")),
		m.note.View(),
	}
	return th.Frame.Render(strings.Join(lines, "\n"))
}

func (m *Model) footerView() string {
	th := m.theme.Footer
	var help string
	switch m.mode {
	case modePicker:
		help = "↑/↓ move · enter toggle · esc done"
	case modeNote:
		help = "enter save · esc cancel · empty clears"
	default:
		help = "←/→/↑/↓ day · h/l month · t today · enter moods · n note · a analytics · q quit"
	}
	lines := []string{th.Help.Render(help)}
	if m.status != "" {
		style := th.Status
		if m.statusErr {
			style = th.Error
		}
		lines = append(lines, style.Render(m.status))
	}
	return strings.Join(lines, "\n")
}
