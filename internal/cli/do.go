package cli

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/taskcal/internal/commands"
	"github.com/spf13/cobra"
)

func addDo(topLevel *cobra.Command, o *rootOptions) {
	cmd := &cobra.Command{
		Use:   "do <command...>",
		Short: "Run one palette command against the store.",
		Example: `
taskcal do toggle 1714550400000
taskcal do update 1714550400000 new title | new description
taskcal do delete 1714550400000
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := commands.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			s, err := openBatch(cmd, o)
			if err != nil {
				return err
			}
			defer s.Close()

			res, err := s.state.Run(cmd.Context(), parsed)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}
