package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/config"
)

type initOptions struct {
	name       string
	budget     int64
	currency   string
	categories []string
}

func newInitCommand() *cobra.Command {
	var opts initOptions

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default tally.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			path, err := runInit(absDir, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized tally at %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "your name")
	cmd.Flags().Int64Var(&opts.budget, "budget", 0, "monthly budget")
	cmd.Flags().StringVar(&opts.currency, "currency", "", "currency prefix for amounts (default \"Rs.\")")
	cmd.Flags().StringArrayVar(&opts.categories, "category", nil, "category to create up front (repeatable)")

	return cmd
}

func runInit(dir string, opts initOptions) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, DefaultConfigFile)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("checking %s: %w", path, err)
	}

	cfg := config.Default()
	cfg.User = config.UserConfig{Name: opts.name, Budget: opts.budget}
	if opts.currency != "" {
		cfg.Currency = opts.currency
	}
	cfg.Categories = opts.categories

	if err := config.Save(path, cfg); err != nil {
		return "", fmt.Errorf("writing config: %w", err)
	}
	return path, nil
}
