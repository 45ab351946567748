package model

// User is the single account of a session: a monthly budget plus the full
// expense history in insertion order.
type User struct {
	Name     string
	Budget   int64
	expenses []Expense
}

// NewUser creates a User with no expenses.
func NewUser(name string, budget int64) *User {
	return &User{Name: name, Budget: budget}
}

// AddExpense appends e to the history.
func (u *User) AddExpense(e Expense) {
	u.expenses = append(u.expenses, e)
}

// Expenses returns a copy of the history in insertion order.
func (u *User) Expenses() []Expense {
	out := make([]Expense, len(u.expenses))
	copy(out, u.expenses)
	return out
}

// TotalSpent sums every recorded expense.
func (u *User) TotalSpent() int64 {
	var total int64
	for _, e := range u.expenses {
		total += e.Amount
	}
	return total
}

// CheckBudget compares the budget against the current total.
func (u *User) CheckBudget() BudgetStatus {
	return BudgetStatus{Budget: u.Budget, Spent: u.TotalSpent()}
}

// BudgetStatus is a snapshot of budget against spend.
type BudgetStatus struct {
	Budget int64
	Spent  int64
}

// Remaining is Budget minus Spent; negative when over budget.
func (b BudgetStatus) Remaining() int64 {
	return b.Budget - b.Spent
}

// Over reports whether spend exceeds the budget. Spending exactly the budget is not over.
func (b BudgetStatus) Over() bool {
	return b.Spent > b.Budget
}

// Deficit is how far spend exceeds the budget, or 0.
func (b BudgetStatus) Deficit() int64 {
	if !b.Over() {
		return 0
	}
	return b.Spent - b.Budget
}
