package services

import (
	"fmt"
	"sort"
	"time"

	"voice-ledger/internal/models"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

type statsService struct {
	ledger   LedgerServiceInterface
	registry RegistryServiceInterface
	metrics  MetricsRecorderInterface
	nowFn    func() time.Time
}

// NewStatsService creates a statistics service. All figures are recomputed
// from current ledger and registry state on every call.
func NewStatsService(
	ledger LedgerServiceInterface,
	registry RegistryServiceInterface,
	metrics MetricsRecorderInterface,
) StatsServiceInterface {
	return &statsService{
		ledger:   ledger,
		registry: registry,
		metrics:  metrics,
		nowFn:    time.Now,
	}
}

// Summary computes the monthly total, today's records, per-category
// distribution and the trailing 6-month trend.
func (s *statsService) Summary() *models.SpendingSummary {
	started := s.nowFn()
	now := started

	expenses := s.ledger.Expenses()
	categories := s.registry.Categories()

	monthly := make([]models.Expense, 0)
	for _, expense := range expenses {
		if expense.InMonth(now.Year(), now.Month()) {
			monthly = append(monthly, expense)
		}
	}

	monthlyTotal := decimal.Zero
	for _, expense := range monthly {
		monthlyTotal = monthlyTotal.Add(expense.Amount)
	}

	today := now.Format(models.ExpenseDateLayout)
	todayExpenses := make([]models.Expense, 0)
	for _, expense := range expenses {
		if expense.Date == today {
			todayExpenses = append(todayExpenses, expense)
		}
	}

	summary := &models.SpendingSummary{
		MonthlyTotal:  monthlyTotal,
		MonthlyCount:  len(monthly),
		TodayExpenses: todayExpenses,
		CategoryStats: s.categoryStats(monthly, categories, monthlyTotal),
		MonthlyTrend:  s.trend(expenses, now),
		GeneratedAt:   now,
	}

	s.metrics.RecordProcessingTime("stats_summary", s.nowFn().Sub(started))

	return summary
}

// categoryStats sums the month's records per registered category, drops zero
// entries and sorts descending by amount. The sort is stable so equal amounts
// keep registry order.
func (s *statsService) categoryStats(monthly []models.Expense, categories []models.Category, total decimal.Decimal) []models.CategoryStat {
	stats := make([]models.CategoryStat, 0, len(categories))
	for _, category := range categories {
		amount := decimal.Zero
		for _, expense := range monthly {
			if expense.Category == category.Name {
				amount = amount.Add(expense.Amount)
			}
		}
		if amount.IsZero() {
			continue
		}

		percentage := 0
		if total.IsPositive() {
			percentage = int(amount.Mul(oneHundred).Div(total).Round(0).IntPart())
		}

		stats = append(stats, models.CategoryStat{
			Category:   category.Name,
			Amount:     amount,
			Percentage: percentage,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Amount.GreaterThan(stats[j].Amount)
	})

	return stats
}

// trend sums each of the trailing six calendar months, oldest first, with
// zero-filled months and localized short labels.
func (s *statsService) trend(expenses []models.Expense, now time.Time) []models.TrendPoint {
	points := make([]models.TrendPoint, 0, 6)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	for i := 5; i >= 0; i-- {
		target := firstOfMonth.AddDate(0, -i, 0)

		amount := decimal.Zero
		for _, expense := range expenses {
			if expense.InMonth(target.Year(), target.Month()) {
				amount = amount.Add(expense.Amount)
			}
		}

		points = append(points, models.TrendPoint{
			Month:  fmt.Sprintf("%d月", int(target.Month())),
			Amount: amount,
		})
	}

	return points
}
