package options

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/graph"
)

// Graph output formats.
const (
	GraphText = "text"
	GraphSVG  = "svg"
	GraphPNG  = "png"
)

// GraphOptions controls how `mood graph` renders.
type GraphOptions struct {
	Format string
	Output string
	Width  int
	Height int
	Scale  float64

	Positive string
	Negative string
}

func AddGraphArgs(cmd *cobra.Command, o *GraphOptions) {
	cmd.Flags().StringVarP(&o.Format, "format", "f", "",
		"Output format: text, svg or png. Defaults to the --output extension, or text.")
	cmd.Flags().StringVarP(&o.Output, "output", "o", "",
		"Write the chart to a file instead of stdout.")
	cmd.Flags().IntVar(&o.Width, "width", 0,
		"Text chart width in cells.")
	cmd.Flags().IntVar(&o.Height, "height", 0,
		"Text chart height in cells.")
	cmd.Flags().Float64Var(&o.Scale, "scale", 2,
		"PNG pixel scale.")
	cmd.Flags().StringVar(&o.Positive, "positive-color", "",
		"Hex color of the line above zero. Overrides graph.positive in .mood.yaml.")
	cmd.Flags().StringVar(&o.Negative, "negative-color", "",
		"Hex color of the line below zero. Overrides graph.negative in .mood.yaml.")
}

// Palette applies the color flags on top of base.
func (o *GraphOptions) Palette(base graph.Palette) graph.Palette {
	if o.Positive != "" {
		base.Positive = o.Positive
	}
	if o.Negative != "" {
		base.Negative = o.Negative
	}
	return base
}

// ResolveFormat picks the format from the flag or the output extension.
func (o *GraphOptions) ResolveFormat() (string, error) {
	f := strings.ToLower(strings.TrimSpace(o.Format))
	if f == "" {
		switch strings.ToLower(filepath.Ext(o.Output)) {
		case ".svg":
			f = GraphSVG
		case ".png":
			f = GraphPNG
		default:
			f = GraphText
		}
	}
	switch f {
	case GraphText, GraphSVG, GraphPNG:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected text, svg or png)", o.Format)
	}
}
