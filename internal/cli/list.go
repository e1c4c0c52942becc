package cli

import (
	"fmt"

	"github.com/sandeepkv93/taskcal/internal/views"
	"github.com/spf13/cobra"
)

func addList(topLevel *cobra.Command, o *rootOptions) {
	var date string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print tasks grouped by day, newest first.",
		Example: `
taskcal list
taskcal list --date 2024-05-01
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openBatch(cmd, o)
			if err != nil {
				return err
			}
			defer s.Close()

			if date != "" {
				if err := s.state.SelectDate(date); err != nil {
					return err
				}
			}
			vm := s.state.Project()
			fmt.Fprintln(cmd.OutOrStdout(), views.RenderTaskList(vm, 0))
			fmt.Fprintln(cmd.OutOrStdout(), views.RenderSummary(vm.Summary))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", `Only show one day, example: --date="2024-05-01".`)
	topLevel.AddCommand(cmd)
}
