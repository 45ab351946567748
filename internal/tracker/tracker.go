package tracker

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/ledger"
	"github.com/cleared-dev/tally/internal/model"
)

// ErrUnknownCategory is returned when an expense names a category that was never added.
var ErrUnknownCategory = errors.New("category doesn't exist")

// Store persists expenses. *ledger.Store satisfies it.
type Store interface {
	Append(e model.Expense) error
	Load() ([]model.Expense, []ledger.RowError, error)
}

// Tracker mediates between the User, its categories and the backing store.
// It is the only writer of the store and the only mutator of category totals.
type Tracker struct {
	user       *model.User
	store      Store
	log        *slog.Logger
	categories map[string]*model.Category
	order      []string
	skipped    []ledger.RowError
}

// New creates a Tracker and replays the store into user. Malformed rows are
// logged and skipped; only a failing store aborts construction.
func New(user *model.User, store Store, log *slog.Logger) (*Tracker, error) {
	t := &Tracker{
		user:       user,
		store:      store,
		log:        log,
		categories: make(map[string]*model.Category),
	}
	if err := t.load(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tracker) load() error {
	expenses, skipped, err := t.store.Load()
	if err != nil {
		return fmt.Errorf("loading expenses: %w", err)
	}

	for _, rowErr := range skipped {
		t.log.Warn("skipping malformed ledger row", "line", rowErr.Line, "error", rowErr.Err)
	}
	t.skipped = skipped

	for _, e := range expenses {
		t.AddCategory(e.Category)
		t.record(e)
	}
	t.log.Debug("loaded expenses", "count", len(expenses), "skipped", len(skipped))
	return nil
}

// User returns the tracked user.
func (t *Tracker) User() *model.User {
	return t.user
}

// Skipped returns the rows that could not be loaded.
func (t *Tracker) Skipped() []ledger.RowError {
	return t.skipped
}

// AddCategory creates a category with a zero total. It reports whether the
// category is new; adding an existing name is a no-op.
func (t *Tracker) AddCategory(name string) bool {
	if _, ok := t.categories[name]; ok {
		return false
	}
	t.categories[name] = model.NewCategory(name)
	t.order = append(t.order, name)
	return true
}

// HasCategory reports whether name has been added. Names are case-sensitive.
func (t *Tracker) HasCategory(name string) bool {
	_, ok := t.categories[name]
	return ok
}

// Categories returns copies of all categories in the order they were added.
func (t *Tracker) Categories() []model.Category {
	out := make([]model.Category, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, *t.categories[name])
	}
	return out
}

// AddExpense records an expense under an existing category and appends it to
// the store. The in-memory state is updated before the write, so a failed
// write leaves the expense recorded for this session only.
func (t *Tracker) AddExpense(date, category string, amount int64) (model.Expense, error) {
	if !t.HasCategory(category) {
		return model.Expense{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	e := model.Expense{Date: date, Category: category, Amount: amount}
	t.record(e)

	if err := t.store.Append(e); err != nil {
		t.log.Error("persisting expense", "date", date, "category", category, "error", err)
		return e, fmt.Errorf("saving expense: %w", err)
	}
	return e, nil
}

// record applies e to the user and its category.
func (t *Tracker) record(e model.Expense) {
	t.user.AddExpense(e)
	t.categories[e.Category].UpdateSpent(e.Amount)
}

// Expenses returns every recorded expense in insertion order.
func (t *Tracker) Expenses() []model.Expense {
	return t.user.Expenses()
}

// CategoryTotal is one line of a Summary.
type CategoryTotal struct {
	Name  string
	Total int64
	// Share is the percentage of all spend, rounded to one place.
	Share decimal.Decimal
}

// Summary is a snapshot of per-category totals and the budget.
type Summary struct {
	Categories []CategoryTotal
	Budget     model.BudgetStatus
}

// Summary computes category totals in insertion order plus the budget status.
func (t *Tracker) Summary() Summary {
	status := t.user.CheckBudget()
	spent := decimal.NewFromInt(status.Spent)

	totals := make([]CategoryTotal, 0, len(t.order))
	for _, name := range t.order {
		c := t.categories[name]
		share := decimal.Zero
		if !spent.IsZero() {
			share = decimal.NewFromInt(c.TotalSpent).
				Mul(decimal.NewFromInt(100)).
				Div(spent).
				Round(1)
		}
		totals = append(totals, CategoryTotal{Name: c.Name, Total: c.TotalSpent, Share: share})
	}
	return Summary{Categories: totals, Budget: status}
}
