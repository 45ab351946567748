package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/shell"
)

func newSummaryCommand(flags *globalFlags) *cobra.Command {
	var budget int64

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show category totals and budget status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, *flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("budget") {
				s.cfg.User.Budget = budget
			}
			t, err := s.configuredTracker()
			if err != nil {
				return err
			}

			shell.NewRenderer(cmd.OutOrStdout(), s.cfg.Currency).Summary(t.Summary())
			return nil
		},
	}

	cmd.Flags().Int64Var(&budget, "budget", 0, "monthly budget (defaults to user.budget from the config)")

	return cmd
}

func newCategoriesCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories with their totals",
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

			for _, c := range t.Categories() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s%d\n", c.Name, s.cfg.Currency, c.TotalSpent)
			}
			return nil
		},
	}
}
