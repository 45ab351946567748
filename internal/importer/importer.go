package importer

import (
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/model"
)

// Transaction is one row of a bank statement export.
type Transaction struct {
	Date        time.Time
	Description string
	// Amount is negative for money leaving the account.
	Amount decimal.Decimal
	Type   string
}

// Parser converts a bank CSV file into Transactions.
type Parser interface {
	Parse(r io.Reader) ([]Transaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats lists the registered format names.
func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.parsers))
	for k := range r.parsers {
		out = append(out, k)
	}
	return out
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	return r
}

const expenseDateFormat = "2006-01-02"

// Expenses turns the debits in txns into expenses under category. Credits are
// dropped. Amounts are rounded to whole units, half away from zero.
func Expenses(txns []Transaction, category string) []model.Expense {
	var out []model.Expense
	for _, txn := range txns {
		if !txn.Amount.IsNegative() {
			continue
		}
		out = append(out, model.Expense{
			Date:     txn.Date.Format(expenseDateFormat),
			Category: category,
			Amount:   txn.Amount.Abs().Round(0).IntPart(),
		})
	}
	return out
}
