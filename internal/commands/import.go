package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/importer"
	"github.com/cleared-dev/tally/internal/logging"
)

func newImportCommand(flags *globalFlags) *cobra.Command {
	var format, category string
	var create bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Record the debits from a bank statement CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := importer.DefaultRegistry()
			parser := registry.Get(format)
			if parser == nil {
				known := registry.Formats()
				sort.Strings(known)
				return fmt.Errorf("unknown format %q (known: %s)", format, strings.Join(known, ", "))
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
				t.AddCategory(category)
			}
			if !t.HasCategory(category) {
				return fmt.Errorf("category %q doesn't exist, add it first or pass --create", category)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening statement: %w", err)
			}
			defer f.Close()

			txns, err := parser.Parse(f)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			log := logging.WithComponent(s.log, logging.ComponentCommands)
			expenses := importer.Expenses(txns, category)
			for _, e := range expenses {
				if _, err := t.AddExpense(e.Date, e.Category, e.Amount); err != nil {
					return err
				}
				log.Debug("imported expense", "date", e.Date, "amount", e.Amount)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d expense(s) from %d transaction(s).\n", len(expenses), len(txns))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "chase", "statement format")
	cmd.Flags().StringVar(&category, "category", "", "category for the imported expenses (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().BoolVar(&create, "create", false, "create the category if it doesn't exist")

	return cmd
}
