package ledger

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cleared-dev/tally/internal/model"
)

const (
	numFields   = 3
	colDate     = 0
	colCategory = 1
	colAmount   = 2
)

// RowError describes a row that was skipped while reading the ledger.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// ReadExpenses reads every row from r. Malformed rows are skipped and reported
// as RowErrors; the returned error is non-nil only when r itself fails.
//
// Each physical line is parsed on its own, so an unterminated quote costs only
// its own line. Fields with embedded newlines are not supported.
func ReadExpenses(r io.Reader) ([]model.Expense, []RowError, error) {
	br := bufio.NewReader(r)

	var (
		expenses []model.Expense
		skipped  []RowError
	)
	for line := 1; ; line++ {
		text, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("reading ledger CSV: %w", err)
		}
		eof := err != nil

		if rec, perr := parseLine(text); perr != nil {
			skipped = append(skipped, RowError{Line: line, Err: perr})
		} else if rec != nil {
			e, uerr := UnmarshalExpense(rec)
			if uerr != nil {
				skipped = append(skipped, RowError{Line: line, Err: uerr})
			} else {
				expenses = append(expenses, e)
			}
		}

		if eof {
			break
		}
	}
	return expenses, skipped, nil
}

// parseLine parses one ledger line. A blank line yields a nil record.
func parseLine(text string) ([]string, error) {
	text = strings.TrimRight(text, "\r\n")
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = -1
	rec, err := cr.Read()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, perr.Err
		}
		return nil, err
	}
	return rec, nil
}

// AppendExpenses writes expenses as ledger rows. The ledger has no header.
func AppendExpenses(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, e := range expenses {
		if err := cw.Write(MarshalExpense(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalExpense converts an Expense to a CSV row.
func MarshalExpense(e model.Expense) []string {
	row := make([]string, numFields)
	row[colDate] = e.Date
	row[colCategory] = e.Category
	row[colAmount] = strconv.FormatInt(e.Amount, 10)
	return row
}

// UnmarshalExpense converts a CSV row to an Expense.
func UnmarshalExpense(record []string) (model.Expense, error) {
	if len(record) != numFields {
		return model.Expense{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	amount, err := strconv.ParseInt(strings.TrimSpace(record[colAmount]), 10, 64)
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return model.Expense{
		Date:     record[colDate],
		Category: record[colCategory],
		Amount:   amount,
	}, nil
}
