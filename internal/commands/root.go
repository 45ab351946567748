package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/buildinfo"
	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/shell"
	"github.com/cleared-dev/tally/internal/tracker"
)

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = "tally.yaml"

// NewRootCommand creates the root CLI command with all subcommands registered.
// Run without a subcommand it starts the interactive shell.
func NewRootCommand() *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "Single-user expense tracker",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, flags)
			if err != nil {
				return err
			}
			return runShell(cmd, s)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", DefaultConfigFile, "config file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flags.storagePath, "storage", "", "expenses CSV file (overrides storage_path)")

	rootCmd.AddCommand(
		newInitCommand(),
		newAddCommand(&flags),
		newListCommand(&flags),
		newSummaryCommand(&flags),
		newCategoriesCommand(&flags),
		newImportCommand(&flags),
	)

	return rootCmd
}

func runShell(cmd *cobra.Command, s *settings) error {
	open := func(user *model.User) (*tracker.Tracker, error) {
		return s.openTracker(user)
	}
	sh := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), open, shell.Options{Currency: s.cfg.Currency})
	return sh.Run()
}
