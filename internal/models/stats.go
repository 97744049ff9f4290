package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryStat is one category's share of the current month's spending
type CategoryStat struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int             `json:"percentage"`
}

// TrendPoint is one month of the trailing six-month series
type TrendPoint struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// SpendingSummary is the full derived view recomputed from the ledger and
// registry on every read. Never persisted.
type SpendingSummary struct {
	MonthlyTotal  decimal.Decimal `json:"monthly_total"`
	MonthlyCount  int             `json:"monthly_count"`
	TodayExpenses []Expense       `json:"today_expenses"`
	CategoryStats []CategoryStat  `json:"category_stats"`
	MonthlyTrend  []TrendPoint    `json:"monthly_trend"`
	GeneratedAt   time.Time       `json:"generated_at"`
}
