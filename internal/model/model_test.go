package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpenseString(t *testing.T) {
	e := Expense{Date: "2024-01-01", Category: "food", Amount: 300}
	assert.Equal(t, "2024-01-01 | food | 300 |", e.String())
}

func TestCategoryUpdateSpent(t *testing.T) {
	c := NewCategory("food")
	assert.Equal(t, int64(0), c.TotalSpent)

	c.UpdateSpent(300)
	c.UpdateSpent(250)
	assert.Equal(t, int64(550), c.TotalSpent)

	// No sign checks.
	c.UpdateSpent(-50)
	assert.Equal(t, int64(500), c.TotalSpent)
}

func TestUserExpensesOrder(t *testing.T) {
	u := NewUser("ana", 1000)
	assert.Empty(t, u.Expenses())

	u.AddExpense(Expense{Date: "2024-01-02", Category: "food", Amount: 250})
	u.AddExpense(Expense{Date: "2024-01-01", Category: "rent", Amount: 500})

	got := u.Expenses()
	assert.Len(t, got, 2)
	assert.Equal(t, "2024-01-02", got[0].Date)
	assert.Equal(t, "2024-01-01", got[1].Date)
	assert.Equal(t, int64(750), u.TotalSpent())

	// The returned slice is a copy.
	got[0].Amount = 0
	assert.Equal(t, int64(750), u.TotalSpent())
}

func TestBudgetStatus(t *testing.T) {
	tests := []struct {
		name          string
		budget, spent int64
		wantOver      bool
		wantRemaining int64
		wantDeficit   int64
	}{
		{"under", 1000, 550, false, 450, 0},
		{"exact", 1000, 1000, false, 0, 0},
		{"over", 1000, 1200, true, -200, 200},
		{"negative budget", -10, 0, true, -10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BudgetStatus{Budget: tt.budget, Spent: tt.spent}
			assert.Equal(t, tt.wantOver, b.Over())
			assert.Equal(t, tt.wantRemaining, b.Remaining())
			assert.Equal(t, tt.wantDeficit, b.Deficit())
		})
	}
}

func TestUserCheckBudget(t *testing.T) {
	u := NewUser("ana", 1000)
	u.AddExpense(Expense{Date: "2024-01-01", Category: "food", Amount: 300})
	u.AddExpense(Expense{Date: "2024-01-02", Category: "food", Amount: 250})

	status := u.CheckBudget()
	assert.Equal(t, int64(1000), status.Budget)
	assert.Equal(t, int64(550), status.Spent)
	assert.Equal(t, int64(450), status.Remaining())
	assert.False(t, status.Over())
}
