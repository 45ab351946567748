package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/tracker"
)

// Menu choices.
const (
	choiceAddExpense  = 1
	choiceList        = 2
	choiceSummary     = 3
	choiceAddCategory = 4
	choiceExit        = 5
)

// errEOF ends the session when input runs out.
var errEOF = errors.New("end of input")

// Opener builds the tracker once the user is known.
type Opener func(user *model.User) (*tracker.Tracker, error)

// Shell is the interactive menu loop.
type Shell struct {
	in     *bufio.Reader
	out    io.Writer
	render *Renderer
	open   Opener
}

// Options configures a Shell.
type Options struct {
	Currency string
}

// New creates a Shell reading from in and writing to out.
func New(in io.Reader, out io.Writer, open Opener, opts Options) *Shell {
	return &Shell{
		in:     bufio.NewReader(in),
		out:    out,
		render: NewRenderer(out, opts.Currency),
		open:   open,
	}
}

// Run prompts for the user, opens the tracker and serves the menu until the
// user exits or input ends. Only a failure to open the tracker is returned.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, "====Welcome to Expense Tracker====")

	name, err := s.readLine("Enter your name: ")
	if err != nil {
		return nil
	}
	budget, err := s.readInt("Enter your monthly budget: ")
	if err != nil {
		return nil
	}

	t, err := s.open(model.NewUser(name, budget))
	if err != nil {
		return fmt.Errorf("opening tracker: %w", err)
	}
	if n := len(t.Skipped()); n > 0 {
		s.render.Warn("Skipped %d malformed row(s) while loading expenses.", n)
	}

	for {
		s.printMenu()
		choice, err := s.readInt("Enter a valid choice: ")
		if err != nil {
			return nil
		}
		if done := s.dispatch(t, choice); done {
			return nil
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out, "1. Add expense")
	fmt.Fprintln(s.out, "2. View expenses")
	fmt.Fprintln(s.out, "3. View summary")
	fmt.Fprintln(s.out, "4. Add expense category")
	fmt.Fprintln(s.out, "5. Exit")
}

// dispatch runs one menu action and reports whether the session is over.
func (s *Shell) dispatch(t *tracker.Tracker, choice int64) bool {
	switch choice {
	case choiceAddExpense:
		return s.addExpense(t) != nil
	case choiceList:
		s.render.Expenses(t.Expenses())
	case choiceSummary:
		s.render.Summary(t.Summary())
	case choiceAddCategory:
		name, err := s.readLine("Enter new category name: ")
		if err != nil {
			return true
		}
		t.AddCategory(name)
		fmt.Fprintf(s.out, "Category %s is added!\n", name)
	case choiceExit:
		fmt.Fprintln(s.out, "Goodbye!! Have a nice day.")
		return true
	default:
		s.render.Warn("Invalid choice!! Please enter a valid choice.")
	}
	return false
}

// addExpense prompts for one expense. It returns errEOF when input ends.
func (s *Shell) addExpense(t *tracker.Tracker) error {
	date, err := s.readLine("Enter date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	category, err := s.readLine("Enter category: ")
	if err != nil {
		return err
	}
	amount, err := s.readInt("Enter amount: ")
	if err != nil {
		return err
	}

	_, err = t.AddExpense(date, category, amount)
	switch {
	case errors.Is(err, tracker.ErrUnknownCategory):
		s.render.Warn("Category doesn't exist!!! Add category first.")
	case err != nil:
		s.render.Error("Expense kept for this session but not saved: %v", err)
	default:
		fmt.Fprintln(s.out, "Expense Added.")
	}
	return nil
}

// readLine prompts and returns one line with the line ending removed. Lines
// have no length limit. A final line without a newline is still returned.
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		fmt.Fprintln(s.out)
		if !errors.Is(err, io.EOF) {
			s.render.Error("Reading input: %v", err)
		}
		return "", errEOF
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readInt prompts until a base-10 integer is entered.
func (s *Shell) readInt(prompt string) (int64, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err == nil {
			return n, nil
		}
		s.render.Error("%q is not a whole number, try again.", line)
	}
}
