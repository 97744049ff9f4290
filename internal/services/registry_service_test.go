package services

import (
	"testing"
	"time"

	"voice-ledger/internal/database"
	"voice-ledger/internal/models"
	"voice-ledger/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// RegistryServiceSuite defines the test suite for RegistryServiceInterface
type RegistryServiceSuite struct {
	suite.Suite
	db      *database.DB
	repo    repositories.SnapshotRepositoryInterface
	metrics *stubMetrics
	ledger  *ledgerService
	service *registryService
}

// SetupTest runs before each test in the suite
func (s *RegistryServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = repositories.NewSnapshotRepository(s.db.DB)
	s.metrics = newStubMetrics()
	s.ledger = NewLedgerService(s.repo, s.metrics).(*ledgerService)
	s.service = NewRegistryService(s.repo, s.ledger, s.metrics).(*registryService)
}

// TearDownTest runs after each test in the suite
func (s *RegistryServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestRegistryServiceSuite runs the test suite
func TestRegistryServiceSuite(t *testing.T) {
	suite.Run(t, new(RegistryServiceSuite))
}

func (s *RegistryServiceSuite) TestSeedsDefaultsOnFirstRun() {
	categories := s.service.Categories()
	s.Len(categories, 7)
	s.Equal("餐饮", categories[0].Name)

	// the seeded set is persisted immediately
	exists, err := s.repo.Exists(models.SnapshotCategories)
	s.NoError(err)
	s.True(exists)
}

func (s *RegistryServiceSuite) TestRestoresFromSnapshot() {
	custom := []models.Category{
		{ID: 42, Name: "旅行", Icon: models.IconCar, Color: "bg-blue-500"},
	}
	s.NoError(s.repo.Save(models.SnapshotCategories, custom))

	service := NewRegistryService(s.repo, s.ledger, s.metrics)
	categories := service.Categories()
	s.Len(categories, 1)
	s.Equal("旅行", categories[0].Name)
}

func (s *RegistryServiceSuite) TestRestore_CorruptSnapshotSeedsDefaults() {
	s.NoError(s.db.DB.Exec(
		"UPDATE snapshots SET data = '{broken' WHERE name = ?",
		models.SnapshotCategories,
	).Error)

	service := NewRegistryService(s.repo, s.ledger, s.metrics)
	s.Len(service.Categories(), 7)
}

func (s *RegistryServiceSuite) TestAddCategory() {
	at := time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)
	s.service.nowFn = fixedClock(at)

	category, err := s.service.AddCategory("  旅行  ", models.IconCar, "bg-blue-500")
	s.NoError(err)
	s.Equal(at.UnixMilli(), category.ID)
	s.Equal("旅行", category.Name)
	s.Equal(models.IconCar, category.Icon)

	s.Len(s.service.Categories(), 8)
}

func (s *RegistryServiceSuite) TestAddCategory_Defaults() {
	category, err := s.service.AddCategory("杂项", "NoSuchGlyph", "")
	s.NoError(err)
	s.Equal(models.IconDefault, category.Icon)
	s.Equal(models.ColorDefault, category.Color)
}

func (s *RegistryServiceSuite) TestAddCategory_BlankName() {
	_, err := s.service.AddCategory("   ", "", "")
	s.ErrorIs(err, ErrCategoryNameRequired)
	s.Len(s.service.Categories(), 7)
}

func (s *RegistryServiceSuite) TestUpdateCategory_RenameCascades() {
	_, err := s.ledger.AddExpense(decimal.RequireFromString("12.50"), "午餐", "餐饮", "")
	s.NoError(err)
	_, err = s.ledger.AddExpense(decimal.RequireFromString("7.50"), "晚餐", "餐饮", "")
	s.NoError(err)

	target := s.service.Categories()[0] // 餐饮
	updated, err := s.service.UpdateCategory(target.ID, "美食", "", "")
	s.NoError(err)
	s.Equal("美食", updated.Name)

	s.Equal(0, s.ledger.CountByCategory("餐饮"))
	s.Equal(2, s.ledger.CountByCategory("美食"))
}

func (s *RegistryServiceSuite) TestUpdateCategory_IconAndColorOptional() {
	target := s.service.Categories()[0]
	updated, err := s.service.UpdateCategory(target.ID, target.Name, "", "")
	s.NoError(err)
	s.Equal(target.Icon, updated.Icon)
	s.Equal(target.Color, updated.Color)
}

func (s *RegistryServiceSuite) TestUpdateCategory_UnknownID() {
	before := s.service.Categories()

	_, err := s.service.UpdateCategory(999999, "幽灵", "", "")
	s.ErrorIs(err, ErrCategoryNotFound)
	s.Equal(before, s.service.Categories())
}

func (s *RegistryServiceSuite) TestRemoveCategory() {
	target := s.service.Categories()[1] // 交通, unreferenced
	s.NoError(s.service.RemoveCategory(target.ID))
	s.Len(s.service.Categories(), 6)
}

func (s *RegistryServiceSuite) TestRemoveCategory_InUse() {
	_, err := s.ledger.AddExpense(decimal.NewFromInt(30), "地铁", "交通", "")
	s.NoError(err)

	target := s.service.Categories()[1] // 交通
	err = s.service.RemoveCategory(target.ID)
	s.ErrorIs(err, ErrCategoryInUse)
	s.Len(s.service.Categories(), 7)
}

func (s *RegistryServiceSuite) TestRemoveCategory_UnknownID() {
	s.ErrorIs(s.service.RemoveCategory(123), ErrCategoryNotFound)
}

func (s *RegistryServiceSuite) TestResolveIconAndColor() {
	s.Equal(models.IconCoffee, s.service.ResolveIcon("餐饮"))
	s.NotEqual(models.ColorDefault, s.service.ResolveColor("餐饮"))

	// orphaned references fall back to defaults
	s.Equal(models.IconDefault, s.service.ResolveIcon("不存在"))
	s.Equal(models.ColorDefault, s.service.ResolveColor("不存在"))
}
