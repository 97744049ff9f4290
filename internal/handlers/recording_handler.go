package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"voice-ledger/internal/dto"
	"voice-ledger/internal/errors"
	"voice-ledger/internal/models"
	"voice-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// RecordingHandler drives the capture session and accepts direct uploads
type RecordingHandler struct {
	recording services.RecordingServiceInterface
	sink      services.RecordingSinkInterface
}

// NewRecordingHandler creates a new recording handler
func NewRecordingHandler(
	recording services.RecordingServiceInterface,
	sink services.RecordingSinkInterface,
) *RecordingHandler {
	return &RecordingHandler{
		recording: recording,
		sink:      sink,
	}
}

// StartSession begins a capture session
func (h *RecordingHandler) StartSession(c echo.Context) error {
	if err := h.recording.Start(); err != nil {
		if err == services.ErrSessionBusy {
			return SendError(c, errors.RecordingSessionBusy)
		}
		return SendError(c, failureErrorCode(h.recording.LastError()), errors.WithDetails(err.Error()))
	}

	return c.JSON(http.StatusOK, h.sessionStatus())
}

// StopSession ends the session and stores the assembled artifact
func (h *RecordingHandler) StopSession(c echo.Context) error {
	location, duration, err := h.recording.Stop(c.Request().Context())
	if err != nil {
		if err == services.ErrSessionBusy {
			return SendError(c, errors.RecordingSessionBusy)
		}
		return SendError(c, failureErrorCode(h.recording.LastError()), errors.WithDetails(err.Error()))
	}

	return c.JSON(http.StatusOK, dto.StopSessionResponse{
		Location:        location,
		DurationSeconds: duration,
	})
}

// SessionStatus reports the observable session state
func (h *RecordingHandler) SessionStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, h.sessionStatus())
}

// UploadRecording accepts a multipart audio file straight into the sink
func (h *RecordingHandler) UploadRecording(c echo.Context) error {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Audio file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return SendSystemError(c, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return SendSystemError(c, err)
	}

	name := filepath.Base(fileHeader.Filename)
	if name == "" || name == "." {
		name = fmt.Sprintf("recording-%d.wav", time.Now().UnixMilli())
	}

	artifact := &models.AudioArtifact{
		FileName:        name,
		MIMEType:        fileHeader.Header.Get(echo.HeaderContentType),
		Data:            data,
		DurationSeconds: getFormInt(c, "duration", 0),
	}

	location, err := h.sink.Store(c.Request().Context(), artifact)
	if err != nil {
		switch err {
		case services.ErrArtifactEmpty:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Audio file is empty"))
		case services.ErrArtifactTooLarge:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Audio file exceeds the size limit"))
		default:
			return SendError(c, errors.RecordingUploadFailed, errors.WithDetails(err.Error()))
		}
	}

	return c.JSON(http.StatusCreated, dto.UploadRecordingResponse{
		Location: location,
		Size:     len(data),
	})
}

func (h *RecordingHandler) sessionStatus() dto.SessionStatusResponse {
	return dto.SessionStatusResponse{
		State:          h.recording.State(),
		ElapsedSeconds: h.recording.Elapsed(),
		LastError:      h.recording.LastError(),
	}
}

// failureErrorCode maps the session's classified failure reason onto an API
// error code
func failureErrorCode(lastErr *models.SessionError) errors.ErrorCode {
	if lastErr == nil {
		return errors.RecordingUnknown
	}

	switch lastErr.Reason {
	case models.FailurePermissionDenied:
		return errors.RecordingPermissionDenied
	case models.FailureDeviceNotFound:
		return errors.RecordingDeviceNotFound
	case models.FailureConstraintError:
		return errors.RecordingConstraintError
	case models.FailureProcessingFailed:
		return errors.RecordingProcessingFailed
	case models.FailureUploadFailed:
		return errors.RecordingUploadFailed
	default:
		return errors.RecordingUnknown
	}
}
