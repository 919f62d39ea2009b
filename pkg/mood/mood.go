// Package mood defines the catalog of moods a day can be tagged with and the
// fixed scoring rule that turns a day's moods into a signed score.
package mood

import (
	"errors"
	"fmt"
	"strings"
)

// Category groups moods for display.
type Category string

const (
	// CategoryEmotion is a feeling.
	CategoryEmotion Category = "emotion"
	// CategoryPhysical is a bodily state.
	CategoryPhysical Category = "physical"
)

// ErrUnknownMood is returned when a name is not in the catalog.
var ErrUnknownMood = errors.New("mood: unknown mood")

// Mood is a named daily state. Name is its identity.
type Mood struct {
	Name     string   `json:"name" yaml:"name"`
	Emoji    string   `json:"emoji" yaml:"emoji"`
	Category Category `json:"category" yaml:"category"`
}

func (m Mood) String() string {
	return m.Emoji + " " + m.Name
}

var catalog = []Mood{
	{Name: "Happy", Emoji: "❤️", Category: CategoryEmotion},
	{Name: "Relax", Emoji: "☕", Category: CategoryEmotion},
	{Name: "Peace", Emoji: "🕊️", Category: CategoryEmotion},
	{Name: "Brave", Emoji: "💪", Category: CategoryEmotion},
	{Name: "Tired", Emoji: "😴", Category: CategoryEmotion},
	{Name: "Procrastination", Emoji: "📱", Category: CategoryEmotion},
	{Name: "Uncomfortable", Emoji: "🦟", Category: CategoryEmotion},
	{Name: "Stress", Emoji: "🍄", Category: CategoryEmotion},
	{Name: "Anxiety/Panic", Emoji: "⚡", Category: CategoryEmotion},
	{Name: "Sad", Emoji: "🌧️", Category: CategoryEmotion},
	{Name: "Angry", Emoji: "🔥", Category: CategoryEmotion},
	{Name: "Guilty", Emoji: "😰", Category: CategoryEmotion},
	{Name: "Shame", Emoji: "🕳️", Category: CategoryEmotion},
	{Name: "Period", Emoji: "🩸", Category: CategoryPhysical},
	{Name: "Diarrhea", Emoji: "💩", Category: CategoryPhysical},
}

// Catalog returns every mood in the order it is offered to the user.
func Catalog() []Mood {
	out := make([]Mood, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a catalog mood by name, ignoring case and surrounding space.
func Lookup(name string) (Mood, bool) {
	name = strings.TrimSpace(name)
	for _, m := range catalog {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Mood{}, false
}

// Parse is Lookup returning ErrUnknownMood for names outside the catalog.
func Parse(name string) (Mood, error) {
	m, ok := Lookup(name)
	if !ok {
		return Mood{}, fmt.Errorf("%w: %q", ErrUnknownMood, name)
	}
	return m, nil
}

// Names lists the catalog names in order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, m := range catalog {
		names[i] = m.Name
	}
	return names
}
