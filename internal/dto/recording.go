package dto

import "voice-ledger/internal/models"

// SessionStatusResponse describes the capture session as observed
type SessionStatusResponse struct {
	State          string               `json:"state"`
	ElapsedSeconds int                  `json:"elapsed_seconds"`
	LastError      *models.SessionError `json:"last_error,omitempty"`
}

// StopSessionResponse reports where the assembled artifact was stored
type StopSessionResponse struct {
	Location        string `json:"location"`
	DurationSeconds int    `json:"duration_seconds"`
}

// UploadRecordingResponse reports the stored location of a directly uploaded artifact
type UploadRecordingResponse struct {
	Location string `json:"location"`
	Size     int    `json:"size"`
}
