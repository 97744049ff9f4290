package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"voice-ledger/internal/models"
)

var (
	ErrArtifactEmpty    = errors.New("artifact has no audio data")
	ErrArtifactTooLarge = errors.New("artifact exceeds the configured size limit")
)

// diskRecordingSink stores accepted artifacts as files under a local directory
type diskRecordingSink struct {
	dir      string
	maxBytes int
}

// NewDiskRecordingSink creates the shipped upload sink. Artifacts larger
// than maxArtifactMiB are rejected.
func NewDiskRecordingSink(dir string, maxArtifactMiB int) RecordingSinkInterface {
	return &diskRecordingSink{
		dir:      dir,
		maxBytes: maxArtifactMiB * 1024 * 1024,
	}
}

// Store writes the artifact to disk and returns its location
func (s *diskRecordingSink) Store(ctx context.Context, artifact *models.AudioArtifact) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("upload aborted: %w", err)
	}

	if artifact == nil || len(artifact.Data) == 0 {
		return "", ErrArtifactEmpty
	}
	if s.maxBytes > 0 && len(artifact.Data) > s.maxBytes {
		return "", ErrArtifactTooLarge
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare recordings directory: %w", err)
	}

	// strip any path components a client might smuggle into the name
	name := filepath.Base(artifact.FileName)
	location := filepath.Join(s.dir, name)

	if err := os.WriteFile(location, artifact.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to store artifact: %w", err)
	}

	slog.Info("recording stored",
		"location", location,
		"bytes", len(artifact.Data),
		"duration_seconds", artifact.DurationSeconds)

	return location, nil
}
