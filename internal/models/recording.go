package models

import (
	"errors"
	"strings"
)

// Recording session states
const (
	SessionStateIdle      = "idle"
	SessionStateRecording = "recording"
	SessionStateStopping  = "stopping"
	SessionStateUploading = "uploading"
)

// Failure reasons surfaced to the user. Advisory text, closed set.
const (
	FailurePermissionDenied = "permission_denied"
	FailureDeviceNotFound   = "device_not_found"
	FailureConstraintError  = "constraint_error"
	FailureProcessingFailed = "processing_failed"
	FailureUploadFailed     = "upload_failed"
	FailureUnknown          = "unknown"
)

// Sentinel capture errors a device implementation may return
var (
	ErrCapturePermissionDenied = errors.New("capture permission denied")
	ErrCaptureDeviceNotFound   = errors.New("capture device not found")
	ErrCaptureConstraint       = errors.New("capture constraints cannot be satisfied")
)

// SessionError is the last classified failure retained on the session
type SessionError struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// AudioArtifact is the assembled whole-file recording handed to the upload sink
type AudioArtifact struct {
	FileName        string `json:"file_name"`
	MIMEType        string `json:"mime_type"`
	Data            []byte `json:"-"`
	DurationSeconds int    `json:"duration_seconds"`
}

// IsValidSessionState checks if the session state is valid
func IsValidSessionState(state string) bool {
	switch state {
	case SessionStateIdle, SessionStateRecording, SessionStateStopping, SessionStateUploading:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a session can move from one state to another
func CanTransitionTo(from, to string) bool {
	validTransitions := map[string][]string{
		SessionStateIdle:      {SessionStateRecording},
		SessionStateRecording: {SessionStateStopping},
		SessionStateStopping:  {SessionStateUploading, SessionStateIdle},
		SessionStateUploading: {SessionStateIdle},
	}

	allowed, exists := validTransitions[from]
	if !exists {
		return false
	}
	for _, state := range allowed {
		if state == to {
			return true
		}
	}
	return false
}

// ClassifyCaptureError maps a capture request failure onto the closed reason
// set. Sentinel errors are matched first, then message text, mirroring how
// browser capture failures are distinguished by name and message.
func ClassifyCaptureError(err error) string {
	if err == nil {
		return FailureUnknown
	}

	switch {
	case errors.Is(err, ErrCapturePermissionDenied):
		return FailurePermissionDenied
	case errors.Is(err, ErrCaptureDeviceNotFound):
		return FailureDeviceNotFound
	case errors.Is(err, ErrCaptureConstraint):
		return FailureConstraintError
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "denied"):
		return FailurePermissionDenied
	case strings.Contains(msg, "not found"):
		return FailureDeviceNotFound
	case strings.Contains(msg, "overconstrained") || strings.Contains(msg, "constraint"):
		return FailureConstraintError
	default:
		return FailureUnknown
	}
}
