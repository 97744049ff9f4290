package services

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"voice-ledger/internal/models"
	"voice-ledger/internal/repositories"
)

var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrCategoryInUse        = errors.New("category is referenced by existing expenses")
)

// CategoryUsageInterface is the slice of the ledger the registry needs for
// referential checks and rename cascades.
type CategoryUsageInterface interface {
	CountByCategory(name string) int
	RenameCategoryReferences(oldName, newName string) int
}

type registryService struct {
	mu         sync.RWMutex
	categories []models.Category
	snapshots  repositories.SnapshotRepositoryInterface
	ledger     CategoryUsageInterface
	metrics    MetricsRecorderInterface
	nowFn      func() time.Time
}

// NewRegistryService creates a category registry seeded from the persisted
// categories snapshot, falling back to the default set on first run.
func NewRegistryService(
	snapshots repositories.SnapshotRepositoryInterface,
	ledger CategoryUsageInterface,
	metrics MetricsRecorderInterface,
) RegistryServiceInterface {
	service := &registryService{
		snapshots: snapshots,
		ledger:    ledger,
		metrics:   metrics,
		nowFn:     time.Now,
	}
	service.restore()
	return service
}

func (s *registryService) restore() {
	var stored []models.Category
	err := s.snapshots.Load(models.SnapshotCategories, &stored)
	switch {
	case err == nil:
		s.categories = stored
		return
	case errors.Is(err, repositories.ErrSnapshotNotFound):
		// first run
	default:
		slog.Warn("categories snapshot unreadable, seeding defaults", "error", err)
	}

	s.categories = models.DefaultCategories()
	s.persistLocked()
}

// Categories returns a copy of the registry in insertion order
func (s *registryService) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// AddCategory appends a new category to the registry
func (s *registryService) AddCategory(name, icon, color string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	if color == "" {
		color = models.ColorDefault
	}

	category := models.Category{
		ID:    s.nowFn().UnixMilli(),
		Name:  name,
		Icon:  models.NormalizeIcon(icon),
		Color: color,
	}

	s.mu.Lock()
	s.categories = append(s.categories, category)
	s.persistLocked()
	s.mu.Unlock()

	s.metrics.IncrementCounter("category_mutated", map[string]string{"action": "add"})

	slog.Info("category added", "id", category.ID, "name", category.Name)
	return &category, nil
}

// UpdateCategory edits a category in place. A name change cascades the
// rename into every ledger record referencing the old name.
func (s *registryService) UpdateCategory(id int64, name, icon, color string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	s.mu.Lock()
	idx := s.indexOfLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, ErrCategoryNotFound
	}

	oldName := s.categories[idx].Name
	s.categories[idx].Name = name
	if icon != "" {
		s.categories[idx].Icon = models.NormalizeIcon(icon)
	}
	if color != "" {
		s.categories[idx].Color = color
	}
	updated := s.categories[idx]
	s.persistLocked()
	s.mu.Unlock()

	if oldName != name {
		cascaded := s.ledger.RenameCategoryReferences(oldName, name)
		slog.Info("category renamed",
			"id", id,
			"old", oldName,
			"new", name,
			"cascaded", cascaded)
	}

	s.metrics.IncrementCounter("category_mutated", map[string]string{"action": "update"})
	return &updated, nil
}

// RemoveCategory deletes a category unless any expense still references it
func (s *registryService) RemoveCategory(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return ErrCategoryNotFound
	}

	if s.ledger.CountByCategory(s.categories[idx].Name) > 0 {
		return ErrCategoryInUse
	}

	name := s.categories[idx].Name
	s.categories = append(s.categories[:idx], s.categories[idx+1:]...)
	s.persistLocked()

	s.metrics.IncrementCounter("category_mutated", map[string]string{"action": "remove"})

	slog.Info("category removed", "id", id, "name", name)
	return nil
}

// ResolveIcon looks up the icon for a category name. Orphaned references
// resolve to the default glyph.
func (s *registryService) ResolveIcon(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.categories {
		if s.categories[i].Name == name {
			return s.categories[i].Icon
		}
	}
	return models.IconDefault
}

// ResolveColor looks up the color token for a category name
func (s *registryService) ResolveColor(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.categories {
		if s.categories[i].Name == name {
			return s.categories[i].Color
		}
	}
	return models.ColorDefault
}

func (s *registryService) indexOfLocked(id int64) int {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *registryService) persistLocked() {
	if err := s.snapshots.Save(models.SnapshotCategories, s.categories); err != nil {
		s.metrics.IncrementCounter("snapshot_persist_failed", map[string]string{"snapshot": models.SnapshotCategories})
		slog.Warn("failed to persist categories snapshot", "error", err)
	}
}
