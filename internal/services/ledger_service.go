package services

import (
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"voice-ledger/internal/models"
	"voice-ledger/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrAmountNotPositive = errors.New("expense amount must be positive")
)

type ledgerService struct {
	mu        sync.RWMutex
	expenses  []models.Expense
	snapshots repositories.SnapshotRepositoryInterface
	metrics   MetricsRecorderInterface
	nowFn     func() time.Time
}

// NewLedgerService creates a ledger service seeded from the persisted
// expenses snapshot. An absent or unreadable snapshot starts empty.
func NewLedgerService(snapshots repositories.SnapshotRepositoryInterface, metrics MetricsRecorderInterface) LedgerServiceInterface {
	service := &ledgerService{
		snapshots: snapshots,
		metrics:   metrics,
		nowFn:     time.Now,
	}
	service.restore()
	return service
}

func (s *ledgerService) restore() {
	var stored []models.Expense
	err := s.snapshots.Load(models.SnapshotExpenses, &stored)
	switch {
	case err == nil:
		s.expenses = stored
	case errors.Is(err, repositories.ErrSnapshotNotFound):
		s.expenses = []models.Expense{}
	default:
		slog.Warn("expenses snapshot unreadable, starting empty", "error", err)
		s.expenses = []models.Expense{}
	}
}

// Expenses returns a copy of the ledger, newest first
func (s *ledgerService) Expenses() []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// AddExpense records a new expense at the head of the ledger
func (s *ledgerService) AddExpense(amount decimal.Decimal, title, category, timeOfDay string) (*models.Expense, error) {
	if !amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}

	now := s.nowFn()
	if timeOfDay == "" {
		timeOfDay = now.Format("15:04")
	}

	expense := models.Expense{
		ID:        now.UnixMilli(),
		Amount:    amount,
		Title:     title,
		Category:  category,
		Time:      timeOfDay,
		Date:      now.Format(models.ExpenseDateLayout),
		Timestamp: now.UnixMilli(),
	}

	if err := expense.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.expenses = append([]models.Expense{expense}, s.expenses...)
	s.persistLocked()
	s.mu.Unlock()

	s.metrics.IncrementCounter("expense_created", map[string]string{"category": category})

	slog.Info("expense recorded",
		"id", expense.ID,
		"amount", expense.Amount.String(),
		"category", expense.Category)

	return &expense, nil
}

// RenameCategoryReferences rewrites exact category matches across the ledger
func (s *ledgerService) RenameCategoryReferences(oldName, newName string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := 0
	for i := range s.expenses {
		if s.expenses[i].Category == oldName {
			s.expenses[i].Category = newName
			changed++
		}
	}

	if changed > 0 {
		s.persistLocked()
		slog.Info("category references renamed",
			"old", oldName,
			"new", newName,
			"count", changed)
	}

	return changed
}

// CountByCategory returns how many ledger records reference the category name
func (s *ledgerService) CountByCategory(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for i := range s.expenses {
		if s.expenses[i].Category == name {
			count++
		}
	}
	return count
}

// ClearAll unconditionally empties the ledger and its snapshot
func (s *ledgerService) ClearAll() int {
	s.mu.Lock()
	removed := len(s.expenses)
	s.expenses = []models.Expense{}
	s.persistLocked()
	s.mu.Unlock()

	s.metrics.IncrementCounter("expenses_cleared", nil)

	slog.Info("ledger cleared", "removed", removed)
	return removed
}

// GroupByDate partitions the ledger by calendar date in descending date
// order; within a group the ledger order is preserved.
func (s *ledgerService) GroupByDate() []models.DateGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byDate := make(map[string][]models.Expense)
	dates := make([]string, 0)
	for _, expense := range s.expenses {
		if _, seen := byDate[expense.Date]; !seen {
			dates = append(dates, expense.Date)
		}
		byDate[expense.Date] = append(byDate[expense.Date], expense)
	}

	// ISO dates order lexicographically
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	groups := make([]models.DateGroup, 0, len(dates))
	for _, date := range dates {
		groups = append(groups, models.DateGroup{
			Date:     date,
			Expenses: byDate[date],
		})
	}
	return groups
}

// persistLocked mirrors the in-memory ledger to the snapshot store. Failures
// are logged and the in-memory state stays authoritative.
func (s *ledgerService) persistLocked() {
	if err := s.snapshots.Save(models.SnapshotExpenses, s.expenses); err != nil {
		s.metrics.IncrementCounter("snapshot_persist_failed", map[string]string{"snapshot": models.SnapshotExpenses})
		slog.Warn("failed to persist expenses snapshot", "error", err)
	}
}
