package dto

import "voice-ledger/internal/models"

// CreateExpenseRequest is the payload for logging a new expense.
// Amount travels as a string so the handler can parse it into a decimal
// without float round-tripping.
type CreateExpenseRequest struct {
	Amount   string `json:"amount" validate:"required,expense_amount"`
	Title    string `json:"title" validate:"required,max=100"`
	Category string `json:"category" validate:"required,max=50"`
	Time     string `json:"time" validate:"omitempty,clock_time"`
}

// ListExpensesResponse is the flat ledger listing, newest first
type ListExpensesResponse struct {
	Expenses []models.Expense `json:"expenses"`
	Total    int              `json:"total"`
}

// GroupedExpensesResponse is the ledger partitioned by date, most recent first
type GroupedExpensesResponse struct {
	Groups []models.DateGroup `json:"groups"`
	Total  int                `json:"total"`
}

// ClearExpensesResponse reports how many records a bulk clear removed
type ClearExpensesResponse struct {
	Removed int `json:"removed"`
}
