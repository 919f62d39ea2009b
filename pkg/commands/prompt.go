package commands

import (
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/mood"
)

type moodItem struct {
	Emoji   string
	Name    string
	Score   int
	Checked string
	Done    bool
}

func moodItems(current []mood.Mood) []moodItem {
	items := make([]moodItem, 0, len(mood.Catalog())+1)
	items = append(items, moodItem{Name: "done", Done: true})
	for _, m := range mood.Catalog() {
		checked := " "
		if mood.Has(current, m.Name) {
			checked = "✓"
		}
		items = append(items, moodItem{
			Emoji:   m.Emoji,
			Name:    m.Name,
			Score:   mood.ScoreOf(m.Name),
			Checked: checked,
		})
	}
	return items
}

// promptMood asks for one mood to toggle. done is true when the user picks
// "done".
func promptMood(cmd *cobra.Command, label string, current []mood.Mood) (name string, done bool, err error) {
	items := moodItems(current)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ if .Done }}{{ .Name | bold }}{{ else }}{{ .Checked }} {{ .Emoji }} {{ .Name | cyan }}{{ end }}",
		Inactive: "   {{ if .Done }}{{ .Name | faint }}{{ else }}{{ .Checked }} {{ .Emoji }} {{ .Name }}{{ end }}",
		Selected: "{{ if not .Done }}➜  {{ .Emoji }} {{ .Name | cyan }}{{ end }}",
		Details: `{{ if not .Done }}
--------- Score ----------
{{ .Score }}{{ end }}`,
	}

	searcher := func(input string, index int) bool {
		name := strings.ToLower(items[index].Name)
		input = strings.ReplaceAll(strings.ToLower(input), " ", "")
		return strings.Contains(name, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     items,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    nopWriteCloser{cmd.OutOrStdout()},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", false, err
	}
	if items[i].Done {
		return "", true, nil
	}
	return items[i].Name, false, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
