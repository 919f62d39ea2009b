package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/timeutil"
)

// OnOptions selects the day a command works on.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a day, example: --on=2024-02-28, --on=yesterday, --on=12 or --on="2d ago". Defaults to today.`)
}

// GetOn resolves the flag relative to now.
func (o *OnOptions) GetOn(now time.Time) (time.Time, error) {
	return timeutil.ParseDate(o.OnString, now)
}
