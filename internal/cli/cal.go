package cli

import (
	"fmt"

	"github.com/sandeepkv93/taskcal/internal/calendar"
	"github.com/sandeepkv93/taskcal/internal/views"
	"github.com/spf13/cobra"
)

func addCal(topLevel *cobra.Command, o *rootOptions) {
	var month string
	cmd := &cobra.Command{
		Use:   "cal",
		Short: "Print a month calendar. Days with tasks are highlighted.",
		Example: `
taskcal cal
taskcal cal --month 2024-05
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openBatch(cmd, o)
			if err != nil {
				return err
			}
			defer s.Close()

			if month != "" {
				m, err := calendar.ParseMonth(month)
				if err != nil {
					return err
				}
				s.state.ShowMonth(m)
			}
			fmt.Fprintln(cmd.OutOrStdout(), views.RenderCalendar(s.state.Project(), ""))
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", `Month to show, example: --month="2024-05".`)
	topLevel.AddCommand(cmd)
}
