package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/shell"
)

func newListCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, *flags)
			if err != nil {
				return err
			}
			t, err := s.configuredTracker()
			if err != nil {
				return err
			}

			expenses := t.Expenses()
			if len(expenses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No expenses found!")
				return nil
			}
			table, err := shell.Table(expenses, s.cfg.Currency)
			if err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}
