package options

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/app"
)

// JournalOptions selects the file and encoding of an export or import.
type JournalOptions struct {
	Format string
	File   string
}

func AddJournalArgs(cmd *cobra.Command, o *JournalOptions) {
	cmd.Flags().StringVarP(&o.Format, "format", "f", "",
		"Encoding: json or yaml. Defaults to the file extension, or json.")
	cmd.Flags().StringVar(&o.File, "file", "",
		"File to use instead of stdin/stdout.")
}

// ResolveFormat picks the encoding from the flag or the file extension.
func (o *JournalOptions) ResolveFormat() string {
	if f := strings.ToLower(strings.TrimSpace(o.Format)); f != "" {
		return f
	}
	switch strings.ToLower(filepath.Ext(o.File)) {
	case ".yaml", ".yml":
		return app.FormatYAML
	default:
		return app.FormatJSON
	}
}
