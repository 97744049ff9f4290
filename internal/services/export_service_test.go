package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"voice-ledger/internal/database"
	"voice-ledger/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ExportServiceSuite defines the test suite for ExportServiceInterface
type ExportServiceSuite struct {
	suite.Suite
	db      *database.DB
	metrics *stubMetrics
	ledger  *ledgerService
	service *exportService
}

// SetupTest runs before each test in the suite
func (s *ExportServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	repo := repositories.NewSnapshotRepository(s.db.DB)
	s.metrics = newStubMetrics()
	s.ledger = NewLedgerService(repo, s.metrics).(*ledgerService)
	s.service = NewExportService(s.ledger, s.metrics).(*exportService)
}

// TearDownTest runs after each test in the suite
func (s *ExportServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestExportServiceSuite runs the test suite
func TestExportServiceSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceSuite))
}

func (s *ExportServiceSuite) TestExportCSV() {
	s.ledger.nowFn = fixedClock(time.Date(2024, 6, 10, 12, 30, 0, 0, time.Local))
	_, err := s.ledger.AddExpense(decimal.RequireFromString("12.50"), "午餐", "餐饮", "12:30")
	s.NoError(err)

	s.ledger.nowFn = fixedClock(time.Date(2024, 6, 11, 19, 0, 0, 0, time.Local))
	_, err = s.ledger.AddExpense(decimal.RequireFromString("7.5"), "晚餐", "餐饮", "19:00")
	s.NoError(err)

	s.service.nowFn = fixedClock(time.Date(2024, 6, 12, 8, 0, 0, 0, time.Local))

	data, filename, err := s.service.ExportCSV()
	s.NoError(err)
	s.Equal("记账数据_2024-06-12.csv", filename)

	s.True(bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}), "payload must open with a UTF-8 BOM")

	lines := strings.Split(strings.TrimSpace(string(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))), "\n")
	s.Require().Len(lines, 3)
	s.Equal("日期,时间,标题,分类,金额", lines[0])

	// ledger order: newest first, amounts fixed to two decimals
	s.Equal("2024-06-11,19:00,晚餐,餐饮,7.50", lines[1])
	s.Equal("2024-06-10,12:30,午餐,餐饮,12.50", lines[2])
}

func (s *ExportServiceSuite) TestExportCSV_EmptyLedger() {
	data, _, err := s.service.ExportCSV()
	s.NoError(err)

	lines := strings.Split(strings.TrimSpace(string(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))), "\n")
	s.Len(lines, 1)
	s.Equal("日期,时间,标题,分类,金额", lines[0])
}
