package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"voice-ledger/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// snapshotRepository implements SnapshotRepositoryInterface
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *gorm.DB) SnapshotRepositoryInterface {
	return &snapshotRepository{
		db: db,
	}
}

// Save serializes value and overwrites the snapshot stored under name
func (r *snapshotRepository) Save(name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %q: %w", name, err)
	}

	snapshot := models.Snapshot{
		Name:      name,
		Data:      string(data),
		UpdatedAt: time.Now().UTC(),
	}

	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&snapshot).Error; err != nil {
		return fmt.Errorf("failed to save snapshot %q: %w", name, err)
	}
	return nil
}

// Load reads the snapshot stored under name and decodes it into dest
func (r *snapshotRepository) Load(name string, dest any) error {
	var snapshot models.Snapshot
	if err := r.db.Where("name = ?", name).First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSnapshotNotFound
		}
		return fmt.Errorf("failed to load snapshot %q: %w", name, err)
	}

	if err := json.Unmarshal([]byte(snapshot.Data), dest); err != nil {
		return fmt.Errorf("failed to decode snapshot %q: %w", name, err)
	}
	return nil
}

// Delete removes the snapshot stored under name
func (r *snapshotRepository) Delete(name string) error {
	result := r.db.Where("name = ?", name).Delete(&models.Snapshot{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete snapshot %q: %w", name, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSnapshotNotFound
	}
	return nil
}

// Exists reports whether a snapshot is stored under name
func (r *snapshotRepository) Exists(name string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Snapshot{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check snapshot existence: %w", err)
	}
	return count > 0, nil
}
