package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newAddCommand(flags *globalFlags) *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:   "add <date> <category> <amount>",
		Short: "Record one expense",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseInt(strings.TrimSpace(args[2]), 10, 64)
			if err != nil {
				return fmt.Errorf("amount %q is not a whole number", args[2])
			}

			s, err := loadSettings(cmd, *flags)
			if err != nil {
				return err
			}
			t, err := s.configuredTracker()
			if err != nil {
				return err
			}

			if create {
				t.AddCategory(args[1])
			}
			e, err := t.AddExpense(args[0], args[1], amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Expense Added: %s\n", e)
			return nil
		},
	}

	cmd.Flags().BoolVar(&create, "create", false, "create the category if it doesn't exist")

	return cmd
}
