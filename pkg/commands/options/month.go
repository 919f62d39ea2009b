package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/timeutil"
)

// MonthOptions selects the month a command shows.
type MonthOptions struct {
	MonthString string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.MonthString, "month", "m", "",
		`Specify a month, example: --month=2024-02, --month=last or --month="Feb 2024". Defaults to this month.`)
}

// GetMonth resolves the flag relative to now.
func (o *MonthOptions) GetMonth(now time.Time) (time.Time, error) {
	return timeutil.ParseMonth(o.MonthString, now)
}
