package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/config"
	"github.com/cleared-dev/tally/internal/ledger"
	"github.com/cleared-dev/tally/internal/logging"
	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/tracker"
)

type globalFlags struct {
	configPath  string
	storagePath string
}

// settings is the resolved configuration for one command invocation.
type settings struct {
	cfg *config.Config
	log *slog.Logger
}

// loadSettings resolves config with precedence flag > environment > file > default.
// A relative storage_path from the file is taken relative to the file's directory.
func loadSettings(cmd *cobra.Command, flags globalFlags) (*settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := config.LoadOrDefault(flags.configPath)
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(cfg.StoragePath) {
		cfg.StoragePath = filepath.Join(filepath.Dir(flags.configPath), cfg.StoragePath)
	}

	config.ApplyEnv(cfg)
	if flags.storagePath != "" {
		cfg.StoragePath = flags.storagePath
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	log := logging.New(cmd.ErrOrStderr(), level)

	return &settings{cfg: cfg, log: log}, nil
}

// openTracker replays the ledger for user and seeds the configured categories.
func (s *settings) openTracker(user *model.User) (*tracker.Tracker, error) {
	store := ledger.NewStore(s.cfg.StoragePath)
	t, err := tracker.New(user, store, logging.WithComponent(s.log, logging.ComponentTracker))
	if err != nil {
		return nil, err
	}
	for _, c := range s.cfg.Categories {
		t.AddCategory(c)
	}
	return t, nil
}

// configuredTracker opens the tracker for the user named in the config file.
func (s *settings) configuredTracker() (*tracker.Tracker, error) {
	return s.openTracker(model.NewUser(s.cfg.User.Name, s.cfg.User.Budget))
}
