package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/chart"
	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/graph"
	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/timeutil"
)

func addGraph(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	gro := &options.GraphOptions{}

	cmd := &cobra.Command{
		Use:     "graph",
		Aliases: []string{"chart"},
		Short:   "Chart the daily mood score of a month",
		Long: `Chart the daily mood score of a month. Each day scores the sum of its
moods' weights; the line is pink above zero and blue below.

` + joinLines(mood.ScoreHelp()),
		Example: `
mood graph
mood graph --month last --format svg -o march.svg
mood graph -o march.png --scale 3
mood graph --format svg --positive-color '#e91e63'
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := gro.ResolveFormat()
			if err != nil {
				return output.HandleError(err)
			}
			err = withSession(cmd.Context(), func(svc *app.Service) error {
				month, err := mo.GetMonth(svc.Today())
				if err != nil {
					return err
				}
				c, err := svc.Analyse(month, graph.WithPalette(gro.Palette(svc.Palette)))
				if err != nil {
					return err
				}
				if output.JSON {
					return output.PrintJSON(cmd.OutOrStdout(), graphSummary(c))
				}

				var buf bytes.Buffer
				if err := renderGraph(&buf, c, format, gro); err != nil {
					return err
				}
				if gro.Output == "" {
					_, err := io.Copy(cmd.OutOrStdout(), &buf)
					return err
				}
				if err := os.WriteFile(gro.Output, buf.Bytes(), 0o644); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", gro.Output)
				return nil
			})
			return output.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddGraphArgs(cmd, gro)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func renderGraph(w io.Writer, c *graph.Chart, format string, o *options.GraphOptions) error {
	opts := chart.Options{Help: mood.ScoreHelp()}
	switch format {
	case options.GraphSVG:
		return chart.SVG(w, c, opts)
	case options.GraphPNG:
		return chart.PNG(w, c, chart.PNGOptions{Options: opts, Scale: o.Scale})
	default:
		_, err := fmt.Fprintln(w, chart.Terminal(c, chart.TerminalOptions{Width: o.Width, Height: o.Height}))
		return err
	}
}

type graphJSON struct {
	Month   string             `json:"month"`
	LastDay int                `json:"lastDay"`
	Bounds  graph.AxisBounds   `json:"bounds"`
	ZeroY   float64            `json:"zeroY"`
	Path    string             `json:"path,omitempty"`
	Points  []graph.ScorePoint `json:"points"`
	Markers []graph.Marker     `json:"markers"`
}

func graphSummary(c *graph.Chart) graphJSON {
	out := graphJSON{
		Month:   c.View.Month.Format(timeutil.MonthLayout),
		LastDay: c.View.LastDay,
		Bounds:  c.Bounds,
		ZeroY:   c.Scale.ZeroY(),
		Points:  c.Elapsed,
		Markers: c.Markers,
	}
	if c.HasCurve() {
		out.Path = c.Curve.Path.String()
	}
	return out
}

func joinLines(lines []string) string {
	var b bytes.Buffer
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}
