package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseDateLayout is the calendar-date format used for all grouping and filtering
const ExpenseDateLayout = "2006-01-02"

var (
	ErrAmountRequired   = errors.New("expense amount is required")
	ErrTitleRequired    = errors.New("expense title is required")
	ErrCategoryRequired = errors.New("expense category is required")
)

// Expense represents a single spending record.
// ID and Timestamp are both derived from the creation instant in Unix
// milliseconds; collisions across same-millisecond calls are accepted.
// Records are immutable after creation except for the category-rename cascade.
type Expense struct {
	ID        int64           `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Title     string          `json:"title"`
	Category  string          `json:"category"`
	Time      string          `json:"time"`
	Date      string          `json:"date"`
	Timestamp int64           `json:"timestamp"`
}

// Validate checks that the required fields are present
func (e *Expense) Validate() error {
	if e.Amount.IsZero() {
		return ErrAmountRequired
	}
	if e.Title == "" {
		return ErrTitleRequired
	}
	if e.Category == "" {
		return ErrCategoryRequired
	}
	return nil
}

// OccurredOn parses the record's calendar date
func (e *Expense) OccurredOn() (time.Time, error) {
	return time.Parse(ExpenseDateLayout, e.Date)
}

// InMonth reports whether the record's date falls in the given calendar month.
// Records with unparseable dates never match.
func (e *Expense) InMonth(year int, month time.Month) bool {
	occurred, err := e.OccurredOn()
	if err != nil {
		return false
	}
	return occurred.Year() == year && occurred.Month() == month
}

// DateGroup is one partition of the ledger keyed by calendar date
type DateGroup struct {
	Date     string    `json:"date"`
	Expenses []Expense `json:"expenses"`
}
