package mood

import "strings"

// Month maps a day of the month (1..31) to the moods recorded that day, in
// the order they were added.
type Month map[int][]Mood

// Notes maps a day of the month to its free-text note.
type Notes map[int]string

// Clone deep copies the month so callers can read it without holding locks.
func (m Month) Clone() Month {
	out := make(Month, len(m))
	for day, moods := range m {
		if len(moods) == 0 {
			continue
		}
		cp := make([]Mood, len(moods))
		copy(cp, moods)
		out[day] = cp
	}
	return out
}

// Day returns a copy of the moods recorded on day.
func (m Month) Day(day int) []Mood {
	moods := m[day]
	if len(moods) == 0 {
		return nil
	}
	cp := make([]Mood, len(moods))
	copy(cp, moods)
	return cp
}

// Clone copies the notes, dropping blank ones.
func (n Notes) Clone() Notes {
	out := make(Notes, len(n))
	for day, text := range n {
		if strings.TrimSpace(text) == "" {
			continue
		}
		out[day] = text
	}
	return out
}

// Has reports whether moods contains a mood with the given name.
func Has(moods []Mood, name string) bool {
	for _, m := range moods {
		if m.Name == name {
			return true
		}
	}
	return false
}

// Toggle removes m from moods if present, otherwise appends it. The input is
// never modified.
func Toggle(moods []Mood, m Mood) ([]Mood, bool) {
	if Has(moods, m.Name) {
		return Remove(moods, m.Name), false
	}
	out := make([]Mood, 0, len(moods)+1)
	out = append(out, moods...)
	return append(out, m), true
}

// Remove returns moods without the named mood.
func Remove(moods []Mood, name string) []Mood {
	out := make([]Mood, 0, len(moods))
	for _, m := range moods {
		if m.Name != name {
			out = append(out, m)
		}
	}
	return out
}
