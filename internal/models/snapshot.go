package models

import "time"

// Names of the persisted collections
const (
	SnapshotExpenses   = "expenses"
	SnapshotCategories = "categories"
)

// Snapshot is one persisted collection: the JSON serialization of the whole
// ledger or registry, overwritten wholesale on every mutation.
type Snapshot struct {
	Name      string    `gorm:"type:varchar(50);primaryKey" json:"name"`
	Data      string    `gorm:"type:text;not null" json:"data"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for Snapshot
func (s *Snapshot) TableName() string {
	return "snapshots"
}
