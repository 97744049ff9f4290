package services

import (
	"context"
	"time"

	"voice-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// LedgerServiceInterface defines expense ledger business operations
type LedgerServiceInterface interface {
	// Expenses returns the current ledger, newest first
	Expenses() []models.Expense

	// AddExpense records a new expense at the head of the ledger and persists
	AddExpense(amount decimal.Decimal, title, category, timeOfDay string) (*models.Expense, error)

	// RenameCategoryReferences rewrites the category field of every expense
	// whose category equals old, returning the number of records changed
	RenameCategoryReferences(oldName, newName string) int

	// CountByCategory returns how many expenses reference the category name
	CountByCategory(name string) int

	// ClearAll empties the ledger and its persisted snapshot
	ClearAll() int

	// GroupByDate partitions the ledger by calendar date, most recent date first
	GroupByDate() []models.DateGroup
}

// RegistryServiceInterface defines the contract for the category registry
type RegistryServiceInterface interface {
	// Categories returns the registry in insertion order
	Categories() []models.Category

	AddCategory(name, icon, color string) (*models.Category, error)
	UpdateCategory(id int64, name, icon, color string) (*models.Category, error)
	RemoveCategory(id int64) error

	// ResolveIcon returns the icon for a category name, or the default glyph
	// for orphaned references
	ResolveIcon(name string) string

	// ResolveColor returns the color token for a category name, or the default
	ResolveColor(name string) string
}

// StatsServiceInterface recomputes derived statistics from current state
type StatsServiceInterface interface {
	Summary() *models.SpendingSummary
}

// ExportServiceInterface renders the ledger as a downloadable document
type ExportServiceInterface interface {
	// ExportCSV returns the CSV payload and its suggested filename
	ExportCSV() ([]byte, string, error)
}

// RecordingServiceInterface drives the voice capture session state machine
type RecordingServiceInterface interface {
	// Start begins a capture session; re-entrant starts are rejected
	Start() error

	// Stop ends the session, assembles the artifact and hands it to the sink.
	// It is a no-op while idle.
	Stop(ctx context.Context) (location string, durationSeconds int, err error)

	State() string
	Elapsed() int
	LastError() *models.SessionError
}

// CaptureDeviceInterface grants capture handles for recording sessions
type CaptureDeviceInterface interface {
	Open() (CaptureHandleInterface, error)
}

// CaptureHandleInterface is an open capture stream
type CaptureHandleInterface interface {
	// ReadChunk returns the next accumulated audio chunk
	ReadChunk() ([]byte, error)

	// Close releases the underlying tracks; safe to call more than once
	Close() error
}

// RecordingSinkInterface accepts assembled audio artifacts for storage
type RecordingSinkInterface interface {
	Store(ctx context.Context, artifact *models.AudioArtifact) (location string, err error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
