package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func background() string {
	row := strings.Repeat(".", 10)
	return strings.Join([]string{row, row, row, row}, "\n")
}

func TestComposeCentered(t *testing.T) {
	got := ansi.Strip(Compose(background(), 10, 4, "ab\ncd", Centered()))
	want := strings.Join([]string{
		"..........",
		"....ab....",
		"....cd....",
		"..........",
	}, "\n")
	if got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
}

func TestComposeAbsoluteIsClamped(t *testing.T) {
	tests := map[string]struct {
		placement Placement
		want      Box
	}{
		"inside":       {placement: At(1, 1), want: Box{X: 1, Y: 1, Width: 3, Height: 2}},
		"off the left": {placement: At(-4, 0), want: Box{X: 0, Y: 0, Width: 3, Height: 2}},
		"off the end":  {placement: At(20, 20), want: Box{X: 7, Y: 2, Width: 3, Height: 2}},
		"centered":     {placement: Centered(), want: Box{X: 3, Y: 1, Width: 3, Height: 2}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Locate(10, 4, 3, 2, tc.placement); got != tc.want {
				t.Fatalf("Locate = %+v, want %+v", got, tc.want)
			}
		})
	}

	got := ansi.Strip(Compose(background(), 10, 4, "xyz\nxyz", At(20, 20)))
	lines := strings.Split(got, "\n")
	if lines[3] != ".......xyz" || lines[0] != ".........." {
		t.Fatalf("clamped compose:\n%s", got)
	}
}

func TestComposeWithoutForeground(t *testing.T) {
	got := Compose("hi", 4, 2, "", Centered())
	if got != "hi  \n    " {
		t.Fatalf("got %q", got)
	}
}

func TestSize(t *testing.T) {
	w, h := Size("abc\nde\n")
	if w != 3 || h != 3 {
		t.Fatalf("Size = %d,%d", w, h)
	}
}
