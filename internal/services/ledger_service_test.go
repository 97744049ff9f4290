package services

import (
	"testing"
	"time"

	"voice-ledger/internal/database"
	"voice-ledger/internal/models"
	"voice-ledger/internal/repositories"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LedgerServiceSuite defines the test suite for LedgerServiceInterface
type LedgerServiceSuite struct {
	suite.Suite
	db      *database.DB
	repo    repositories.SnapshotRepositoryInterface
	metrics *stubMetrics
	service *ledgerService
}

// SetupTest runs before each test in the suite
func (s *LedgerServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = repositories.NewSnapshotRepository(s.db.DB)
	s.metrics = newStubMetrics()
	s.service = NewLedgerService(s.repo, s.metrics).(*ledgerService)
}

// TearDownTest runs after each test in the suite
func (s *LedgerServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestLedgerServiceSuite runs the test suite
func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceSuite))
}

func (s *LedgerServiceSuite) TestAddExpense() {
	at := time.Date(2024, 6, 10, 12, 30, 0, 0, time.Local)
	s.service.nowFn = fixedClock(at)

	expense, err := s.service.AddExpense(decimal.RequireFromString("12.50"), "午餐", "餐饮", "")
	s.NoError(err)
	s.Equal(at.UnixMilli(), expense.ID)
	s.Equal(at.UnixMilli(), expense.Timestamp)
	s.Equal("2024-06-10", expense.Date)
	s.Equal("12:30", expense.Time)
	s.Equal("餐饮", expense.Category)

	s.Equal(1, s.metrics.count("expense_created"))
}

func (s *LedgerServiceSuite) TestAddExpense_PrependsNewestFirst() {
	first := time.Date(2024, 6, 10, 8, 0, 0, 0, time.Local)
	second := first.Add(time.Hour)

	s.service.nowFn = fixedClock(first)
	_, err := s.service.AddExpense(decimal.NewFromInt(10), "早餐", "餐饮", "")
	s.NoError(err)

	s.service.nowFn = fixedClock(second)
	_, err = s.service.AddExpense(decimal.NewFromInt(20), "打车", "交通", "")
	s.NoError(err)

	expenses := s.service.Expenses()
	s.Len(expenses, 2)
	s.Equal("打车", expenses[0].Title)
	s.Equal("早餐", expenses[1].Title)
}

func (s *LedgerServiceSuite) TestAddExpense_ExplicitTimeKept() {
	expense, err := s.service.AddExpense(decimal.NewFromInt(5), "咖啡", "餐饮", "09:15")
	s.NoError(err)
	s.Equal("09:15", expense.Time)
}

func (s *LedgerServiceSuite) TestAddExpense_Validation() {
	testCases := []struct {
		name     string
		amount   decimal.Decimal
		title    string
		category string
		expected error
	}{
		{"zero amount", decimal.Zero, "午餐", "餐饮", ErrAmountNotPositive},
		{"negative amount", decimal.NewFromInt(-1), "午餐", "餐饮", ErrAmountNotPositive},
		{"empty title", decimal.NewFromInt(10), "", "餐饮", models.ErrTitleRequired},
		{"empty category", decimal.NewFromInt(10), "午餐", "", models.ErrCategoryRequired},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.AddExpense(tc.amount, tc.title, tc.category, "")
			s.ErrorIs(err, tc.expected)
			s.Empty(s.service.Expenses())
		})
	}
}

func (s *LedgerServiceSuite) TestAddExpense_Persists() {
	_, err := s.service.AddExpense(decimal.RequireFromString("7.50"), gofakeit.Word(), "餐饮", "")
	s.NoError(err)

	// a fresh service over the same store sees the record
	reloaded := NewLedgerService(s.repo, s.metrics)
	s.Len(reloaded.Expenses(), 1)
}

func (s *LedgerServiceSuite) TestRestore_CorruptSnapshotStartsEmpty() {
	err := s.db.DB.Create(&models.Snapshot{
		Name:      models.SnapshotExpenses,
		Data:      "{definitely-not-json",
		UpdatedAt: time.Now(),
	}).Error
	s.NoError(err)

	service := NewLedgerService(s.repo, s.metrics)
	s.Empty(service.Expenses())
}

func (s *LedgerServiceSuite) TestRenameCategoryReferences() {
	for i := 0; i < 3; i++ {
		_, err := s.service.AddExpense(decimal.NewFromInt(int64(i+1)), gofakeit.Word(), "餐饮", "")
		s.NoError(err)
	}
	_, err := s.service.AddExpense(decimal.NewFromInt(9), gofakeit.Word(), "交通", "")
	s.NoError(err)

	changed := s.service.RenameCategoryReferences("餐饮", "美食")
	s.Equal(3, changed)

	for _, expense := range s.service.Expenses() {
		s.NotEqual("餐饮", expense.Category)
	}
	s.Equal(3, s.service.CountByCategory("美食"))
	s.Equal(1, s.service.CountByCategory("交通"))

	// exact match only, nothing to rename now
	s.Equal(0, s.service.RenameCategoryReferences("餐饮", "美食"))
}

func (s *LedgerServiceSuite) TestClearAll() {
	for i := 0; i < 5; i++ {
		_, err := s.service.AddExpense(decimal.NewFromInt(int64(i+1)), gofakeit.Word(), "生活", "")
		s.NoError(err)
	}

	removed := s.service.ClearAll()
	s.Equal(5, removed)
	s.Empty(s.service.Expenses())

	// the persisted snapshot is emptied too
	reloaded := NewLedgerService(s.repo, s.metrics)
	s.Empty(reloaded.Expenses())
}

func (s *LedgerServiceSuite) TestClearAll_EmptyLedger() {
	s.Equal(0, s.service.ClearAll())
}

func (s *LedgerServiceSuite) TestGroupByDate() {
	days := []time.Time{
		time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local),
		time.Date(2024, 6, 12, 9, 0, 0, 0, time.Local),
		time.Date(2024, 6, 10, 18, 0, 0, 0, time.Local),
		time.Date(2024, 6, 11, 9, 0, 0, 0, time.Local),
	}
	for i, day := range days {
		s.service.nowFn = fixedClock(day)
		_, err := s.service.AddExpense(decimal.NewFromInt(int64(i+1)), gofakeit.Word(), "生活", "")
		s.NoError(err)
	}

	groups := s.service.GroupByDate()
	s.Len(groups, 3)
	s.Equal("2024-06-12", groups[0].Date)
	s.Equal("2024-06-11", groups[1].Date)
	s.Equal("2024-06-10", groups[2].Date)

	// within a group the ledger (newest first) order is preserved
	s.Len(groups[2].Expenses, 2)
	s.True(groups[2].Expenses[0].Timestamp > groups[2].Expenses[1].Timestamp)
}

func (s *LedgerServiceSuite) TestGroupByDate_Empty() {
	s.Empty(s.service.GroupByDate())
}
