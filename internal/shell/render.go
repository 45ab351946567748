package shell

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/tracker"
)

var (
	overBudget  = color.New(color.FgRed, color.Bold).SprintfFunc()
	underBudget = color.New(color.FgGreen).SprintfFunc()
)

// Renderer writes tracker views as console text.
type Renderer struct {
	w        io.Writer
	currency string
}

// NewRenderer creates a Renderer that prefixes amounts with currency.
func NewRenderer(w io.Writer, currency string) *Renderer {
	return &Renderer{w: w, currency: currency}
}

// Expenses writes one line per expense, or a notice when there are none.
func (r *Renderer) Expenses(expenses []model.Expense) {
	if len(expenses) == 0 {
		fmt.Fprintln(r.w, "No expenses found!")
		return
	}
	fmt.Fprintln(r.w, "Expense list:")
	for _, e := range expenses {
		fmt.Fprintln(r.w, e)
	}
}

// Summary writes category totals in order followed by the budget line.
func (r *Renderer) Summary(s tracker.Summary) {
	fmt.Fprintln(r.w, "\nExpense Summary:")
	for _, c := range s.Categories {
		fmt.Fprintf(r.w, "%s: %s%d (%s%%)\n", c.Name, r.currency, c.Total, c.Share.StringFixed(1))
	}
	r.Budget(s.Budget)
}

// Budget writes the over/remaining budget line.
func (r *Renderer) Budget(b model.BudgetStatus) {
	fmt.Fprintln(r.w, BudgetLine(b, r.currency))
}

// BudgetLine renders b as "Over budget!! by ..." or "Remaining budget: ...".
func BudgetLine(b model.BudgetStatus, currency string) string {
	if b.Over() {
		return overBudget("Over budget!! by %s%d", currency, b.Deficit())
	}
	return underBudget("Remaining budget: %s%d", currency, b.Remaining())
}

// Table renders expenses as a boxed table.
func Table(expenses []model.Expense, currency string) (string, error) {
	data := pterm.TableData{{"#", "Date", "Category", "Amount"}}
	for i, e := range expenses {
		data = append(data, []string{
			fmt.Sprint(i + 1),
			e.Date,
			e.Category,
			fmt.Sprintf("%s%d", currency, e.Amount),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
}

// Warn writes a warning message.
func (r *Renderer) Warn(format string, a ...any) {
	fmt.Fprint(r.w, pterm.Warning.Sprintfln(format, a...))
}

// Error writes an error message.
func (r *Renderer) Error(format string, a ...any) {
	fmt.Fprint(r.w, pterm.Error.Sprintfln(format, a...))
}

// Info writes an informational message.
func (r *Renderer) Info(format string, a ...any) {
	fmt.Fprint(r.w, pterm.Info.Sprintfln(format, a...))
}
