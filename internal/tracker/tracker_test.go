package tracker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/tally/internal/ledger"
	"github.com/cleared-dev/tally/internal/logging"
	"github.com/cleared-dev/tally/internal/model"
)

// failingStore loads nothing and rejects every append.
type failingStore struct {
	loadErr error
}

func (s *failingStore) Append(model.Expense) error { return errors.New("disk full") }

func (s *failingStore) Load() ([]model.Expense, []ledger.RowError, error) {
	return nil, nil, s.loadErr
}

func newTracker(t *testing.T, path string, budget int64) *Tracker {
	t.Helper()
	tr, err := New(model.NewUser("ana", budget), ledger.NewStore(path), logging.Discard())
	require.NoError(t, err)
	return tr
}

func ledgerPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "expenses.csv")
}

func TestAddCategory_Idempotent(t *testing.T) {
	tr := newTracker(t, ledgerPath(t), 1000)

	assert.True(t, tr.AddCategory("food"))
	assert.False(t, tr.AddCategory("food"))
	assert.False(t, tr.AddCategory("food"))

	cats := tr.Categories()
	require.Len(t, cats, 1)
	assert.Equal(t, "food", cats[0].Name)
	assert.Equal(t, int64(0), cats[0].TotalSpent)
}

func TestAddCategory_CaseSensitive(t *testing.T) {
	tr := newTracker(t, ledgerPath(t), 1000)

	tr.AddCategory("food")
	tr.AddCategory("Food")
	assert.Len(t, tr.Categories(), 2)
	assert.True(t, tr.HasCategory("Food"))
	assert.False(t, tr.HasCategory("FOOD"))
}

func TestAddExpense_KnownCategory(t *testing.T) {
	tr := newTracker(t, ledgerPath(t), 1000)
	tr.AddCategory("food")
	tr.AddCategory("rent")

	amounts := []int64{300, 250, 0, -40}
	for _, amount := range amounts {
		beforeUser := tr.User().TotalSpent()
		beforeCat := tr.Categories()[0].TotalSpent
		beforeLen := len(tr.Expenses())

		e, err := tr.AddExpense("2024-01-01", "food", amount)
		require.NoError(t, err)
		assert.Equal(t, model.Expense{Date: "2024-01-01", Category: "food", Amount: amount}, e)

		assert.Equal(t, beforeUser+amount, tr.User().TotalSpent())
		assert.Equal(t, beforeCat+amount, tr.Categories()[0].TotalSpent)
		assert.Len(t, tr.Expenses(), beforeLen+1)
	}
	// Other categories are untouched.
	assert.Equal(t, int64(0), tr.Categories()[1].TotalSpent)
}

func TestAddExpense_UnknownCategory(t *testing.T) {
	path := ledgerPath(t)
	tr := newTracker(t, path, 1000)

	_, err := tr.AddExpense("2024-01-01", "travel", 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Contains(t, err.Error(), `"travel"`)

	assert.Empty(t, tr.Expenses())
	assert.Empty(t, tr.Categories())
	assert.Equal(t, int64(0), tr.User().TotalSpent())

	// Nothing was persisted.
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRoundTrip(t *testing.T) {
	path := ledgerPath(t)
	tr := newTracker(t, path, 1000)
	tr.AddCategory("food")
	tr.AddCategory("rent")
	tr.AddCategory("unused")

	_, err := tr.AddExpense("2024-01-01", "food", 300)
	require.NoError(t, err)
	_, err = tr.AddExpense("2024-01-01", "rent", 500)
	require.NoError(t, err)
	_, err = tr.AddExpense("2024-01-02", "food", 250)
	require.NoError(t, err)

	fresh := newTracker(t, path, 1000)
	assert.Equal(t, tr.Expenses(), fresh.Expenses())

	// Categories without expenses are not persisted.
	assert.Equal(t, tr.Categories()[:2], fresh.Categories())
	assert.Empty(t, fresh.Skipped())
}

func TestNew_SkipsMalformedRows(t *testing.T) {
	path := ledgerPath(t)
	data := "2024-01-01,food,300\n2024-01-02,food,lots\nonly-one-field\n2024-01-03,travel,100\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	tr := newTracker(t, path, 1000)

	require.Len(t, tr.Expenses(), 2)
	assert.Equal(t, int64(400), tr.User().TotalSpent())

	skipped := tr.Skipped()
	require.Len(t, skipped, 2)
	assert.Equal(t, 2, skipped[0].Line)
	assert.Equal(t, 3, skipped[1].Line)

	// Categories from valid rows are created on load.
	assert.True(t, tr.HasCategory("food"))
	assert.True(t, tr.HasCategory("travel"))
}

func TestNew_LoadFailure(t *testing.T) {
	_, err := New(model.NewUser("ana", 0), &failingStore{loadErr: errors.New("permission denied")}, logging.Discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading expenses")
}

func TestAddExpense_PersistFailureKeepsMemoryState(t *testing.T) {
	tr, err := New(model.NewUser("ana", 100), &failingStore{}, logging.Discard())
	require.NoError(t, err)
	tr.AddCategory("food")

	_, err = tr.AddExpense("2024-01-01", "food", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving expense")
	assert.Len(t, tr.Expenses(), 1)
	assert.Equal(t, int64(10), tr.Categories()[0].TotalSpent)
}

func TestSummary_Scenario(t *testing.T) {
	tr := newTracker(t, ledgerPath(t), 1000)
	tr.AddCategory("food")

	_, err := tr.AddExpense("2024-01-01", "food", 300)
	require.NoError(t, err)
	_, err = tr.AddExpense("2024-01-02", "food", 250)
	require.NoError(t, err)

	s := tr.Summary()
	require.Len(t, s.Categories, 1)
	assert.Equal(t, "food", s.Categories[0].Name)
	assert.Equal(t, int64(550), s.Categories[0].Total)
	assert.True(t, s.Categories[0].Share.Equal(decimal.NewFromInt(100)))

	assert.False(t, s.Budget.Over())
	assert.Equal(t, int64(450), s.Budget.Remaining())
}

func TestSummary_Shares(t *testing.T) {
	tr := newTracker(t, ledgerPath(t), 100)
	tr.AddCategory("a")
	tr.AddCategory("b")
	tr.AddCategory("c")

	_, err := tr.AddExpense("d", "a", 1)
	require.NoError(t, err)
	_, err = tr.AddExpense("d", "b", 2)
	require.NoError(t, err)

	s := tr.Summary()
	require.Len(t, s.Categories, 3)
	assert.Equal(t, "33.3", s.Categories[0].Share.String())
	assert.Equal(t, "66.7", s.Categories[1].Share.String())
	assert.True(t, s.Categories[2].Share.IsZero())
}

func TestSummary_NothingSpent(t *testing.T) {
	tr := newTracker(t, ledgerPath(t), 1000)
	tr.AddCategory("food")

	s := tr.Summary()
	assert.True(t, s.Categories[0].Share.IsZero())
	assert.Equal(t, int64(1000), s.Budget.Remaining())
}

func TestSummary_OverBudget(t *testing.T) {
	tr := newTracker(t, ledgerPath(t), 500)
	tr.AddCategory("rent")

	_, err := tr.AddExpense("2024-01-01", "rent", 500)
	require.NoError(t, err)
	assert.False(t, tr.Summary().Budget.Over(), "spending exactly the budget is not over")

	_, err = tr.AddExpense("2024-01-02", "rent", 1)
	require.NoError(t, err)
	s := tr.Summary()
	assert.True(t, s.Budget.Over())
	assert.Equal(t, int64(1), s.Budget.Deficit())
}
