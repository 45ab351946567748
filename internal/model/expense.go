package model

import "fmt"

// Expense is one recorded transaction. Date is free-form (nominally
// YYYY-MM-DD) and is never validated.
type Expense struct {
	Date     string
	Category string
	Amount   int64
}

// String renders the expense as "date | category | amount |".
func (e Expense) String() string {
	return fmt.Sprintf("%s | %s | %d |", e.Date, e.Category, e.Amount)
}
