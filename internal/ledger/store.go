package ledger

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cleared-dev/tally/internal/model"
)

// Store is the append-only CSV file holding every recorded expense.
// It assumes a single exclusive owner.
type Store struct {
	path string
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Append writes e as one row at the end of the backing file. The file is
// opened and closed for every call.
func (s *Store) Append(e model.Expense) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating ledger dir: %w", err)
		}
	}

	needsNewline, err := s.missingTrailingNewline()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	if needsNewline {
		if _, err := f.WriteString("\n"); err != nil {
			return fmt.Errorf("terminating last row: %w", err)
		}
	}

	if err := AppendExpenses(f, []model.Expense{e}); err != nil {
		return fmt.Errorf("appending expense: %w", err)
	}
	return f.Close()
}

// Load reads every expense from the backing file. A missing file is an empty ledger.
func (s *Store) Load() ([]model.Expense, []RowError, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("opening ledger %s: %w", s.path, err)
	}
	defer f.Close()

	expenses, skipped, err := ReadExpenses(f)
	if err != nil {
		return nil, nil, fmt.Errorf("reading ledger %s: %w", s.path, err)
	}
	return expenses, skipped, nil
}

// missingTrailingNewline reports whether the file has content that does not
// end in a newline, as happens after a hand edit.
func (s *Store) missingTrailingNewline() (bool, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, fmt.Errorf("stat ledger: %w", err)
	}
	if info.Size() == 0 {
		return false, nil
	}

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading ledger tail: %w", err)
	}
	return last[0] != '\n', nil
}
