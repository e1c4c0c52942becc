package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type addOptions struct {
	Date        string
	Description string
}

func addAdd(topLevel *cobra.Command, o *rootOptions) {
	ao := &addOptions{}
	cmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a task.",
		Example: `
taskcal add pay rent
taskcal add --date 2024-05-01 --desc "before noon" pay rent
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openBatch(cmd, o)
			if err != nil {
				return err
			}
			defer s.Close()

			id, err := s.state.AddTask(cmd.Context(), ao.Date, strings.Join(args, " "), ao.Description)
			if err != nil {
				return err
			}
			entry, _ := s.state.Get(id)
			fmt.Fprintf(cmd.OutOrStdout(), "added %d %s %s\n", id, entry.Date, entry.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&ao.Date, "date", "", `Day of the task, example: --date="2024-05-01". Defaults to today.`)
	cmd.Flags().StringVar(&ao.Description, "desc", "", "Optional description.")

	topLevel.AddCommand(cmd)
}
