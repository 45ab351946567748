package model

// Category groups expenses under a user-defined label and accumulates their total.
type Category struct {
	Name       string
	TotalSpent int64
}

// NewCategory returns a Category with a zero total.
func NewCategory(name string) *Category {
	return &Category{Name: name}
}

// UpdateSpent adds amount to the running total. Negative amounts are accepted.
func (c *Category) UpdateSpent(amount int64) {
	c.TotalSpent += amount
}
