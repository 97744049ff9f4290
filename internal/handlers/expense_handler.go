package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"voice-ledger/internal/dto"
	"voice-ledger/internal/errors"
	"voice-ledger/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ExpenseHandler handles expense ledger HTTP requests
type ExpenseHandler struct {
	ledger services.LedgerServiceInterface
	export services.ExportServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(
	ledger services.LedgerServiceInterface,
	export services.ExportServiceInterface,
) *ExpenseHandler {
	return &ExpenseHandler{
		ledger: ledger,
		export: export,
	}
}

// CreateExpense records a new expense at the head of the ledger
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	var req dto.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount)
	}

	expense, err := h.ledger.AddExpense(amount, req.Title, req.Category, req.Time)
	if err != nil {
		if err == services.ErrAmountNotPositive {
			return SendError(c, errors.ValidationInvalidAmount)
		}
		return SendError(c, errors.ExpenseValidationFailed, errors.WithDetails(err.Error()))
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    expense,
		Message: "Expense recorded",
	})
}

// ListExpenses returns the ledger, flat by default or grouped by date
// when ?grouped=true is set
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	if c.QueryParam("grouped") == "true" {
		groups := h.ledger.GroupByDate()
		total := 0
		for _, group := range groups {
			total += len(group.Expenses)
		}
		return c.JSON(http.StatusOK, dto.GroupedExpensesResponse{
			Groups: groups,
			Total:  total,
		})
	}

	expenses := h.ledger.Expenses()
	return c.JSON(http.StatusOK, dto.ListExpensesResponse{
		Expenses: expenses,
		Total:    len(expenses),
	})
}

// ClearExpenses empties the ledger and its persisted snapshot
func (h *ExpenseHandler) ClearExpenses(c echo.Context) error {
	removed := h.ledger.ClearAll()
	return c.JSON(http.StatusOK, dto.ClearExpensesResponse{Removed: removed})
}

// ExportExpenses streams the ledger as a CSV attachment
func (h *ExpenseHandler) ExportExpenses(c echo.Context) error {
	data, filename, err := h.export.ExportCSV()
	if err != nil {
		return SendError(c, errors.ExpenseExportFailed)
	}

	// RFC 5987 encoding so the CJK filename survives the header
	c.Response().Header().Set(echo.HeaderContentDisposition,
		"attachment; filename*=UTF-8''"+url.PathEscape(filename))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}
