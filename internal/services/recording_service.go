package services

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"voice-ledger/internal/models"
)

var (
	ErrSessionBusy = errors.New("a recording session is already in progress")
	ErrNoAudioData = errors.New("no audio was captured")
)

type recordingService struct {
	mu         sync.Mutex
	state      string
	elapsed    int
	lastErr    *models.SessionError
	handle     CaptureHandleInterface
	chunks     [][]byte
	cancelTick func()

	device       CaptureDeviceInterface
	sink         RecordingSinkInterface
	metrics      MetricsRecorderInterface
	nowFn        func() time.Time
	tickInterval time.Duration
}

// NewRecordingService creates the capture session service. The session owns
// its capture handle and chunk sequence for one recording at a time.
func NewRecordingService(
	device CaptureDeviceInterface,
	sink RecordingSinkInterface,
	metrics MetricsRecorderInterface,
) RecordingServiceInterface {
	return &recordingService{
		state:        models.SessionStateIdle,
		device:       device,
		sink:         sink,
		metrics:      metrics,
		nowFn:        time.Now,
		tickInterval: time.Second,
	}
}

// Start opens a capture handle and begins accumulating chunks. A failure to
// open is classified, retained as the last error, and leaves the session
// idle; there is no automatic retry.
func (s *recordingService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != models.SessionStateIdle {
		return ErrSessionBusy
	}

	handle, err := s.device.Open()
	if err != nil {
		reason := models.ClassifyCaptureError(err)
		s.lastErr = &models.SessionError{Reason: reason, Message: err.Error()}
		s.metrics.IncrementCounter("recording_session", map[string]string{"outcome": reason})
		slog.Warn("capture start failed", "reason", reason, "error", err)
		return fmt.Errorf("failed to open capture device: %w", err)
	}

	s.transitionLocked(models.SessionStateRecording)
	s.elapsed = 0
	s.chunks = nil
	s.lastErr = nil
	s.handle = handle
	s.startTickLocked()

	s.metrics.IncrementCounter("recording_session", map[string]string{"outcome": "started"})
	slog.Info("recording session started")
	return nil
}

// startTickLocked runs the 1-second elapsed counter until cancelled.
// Cancellation is idempotent and ticks after cancellation are harmless.
func (s *recordingService) startTickLocked() {
	ticker := time.NewTicker(s.tickInterval)
	done := make(chan struct{})
	var once sync.Once

	s.cancelTick = func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.tick()
			}
		}
	}()
}

func (s *recordingService) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != models.SessionStateRecording {
		return
	}

	s.elapsed++
	if chunk, err := s.handle.ReadChunk(); err == nil {
		s.chunks = append(s.chunks, chunk)
	}
}

// Stop ends the session: the handle is closed, accumulated chunks are
// assembled into a single artifact and handed to the sink. The chunk
// sequence and handle are discarded whatever the outcome.
func (s *recordingService) Stop(ctx context.Context) (string, int, error) {
	s.mu.Lock()
	if s.state == models.SessionStateIdle {
		s.mu.Unlock()
		return "", 0, nil
	}
	if s.state != models.SessionStateRecording {
		// an in-flight stop or upload is not abortable
		s.mu.Unlock()
		return "", 0, ErrSessionBusy
	}

	s.transitionLocked(models.SessionStateStopping)
	cancel := s.cancelTick
	s.cancelTick = nil
	handle := s.handle
	s.handle = nil
	chunks := s.chunks
	s.chunks = nil
	duration := s.elapsed
	s.mu.Unlock()

	cancel()

	// flush whatever the handle has buffered before releasing it, so a
	// recording stopped inside the first second still yields audio
	if chunk, err := handle.ReadChunk(); err == nil && len(chunk) > 0 {
		chunks = append(chunks, chunk)
	}

	if err := handle.Close(); err != nil {
		slog.Warn("capture handle close failed", "error", err)
	}

	artifact, err := s.assembleArtifact(chunks, duration)
	if err != nil {
		s.fail(models.FailureProcessingFailed, err)
		return "", 0, fmt.Errorf("failed to assemble recording: %w", err)
	}

	s.mu.Lock()
	s.transitionLocked(models.SessionStateUploading)
	s.mu.Unlock()

	location, err := s.sink.Store(ctx, artifact)
	if err != nil {
		s.fail(models.FailureUploadFailed, err)
		return "", 0, fmt.Errorf("failed to upload recording: %w", err)
	}

	s.mu.Lock()
	s.transitionLocked(models.SessionStateIdle)
	s.lastErr = nil
	s.mu.Unlock()

	s.metrics.IncrementCounter("recording_session", map[string]string{"outcome": "uploaded"})
	s.metrics.RecordGauge("recording_artifact_bytes", float64(len(artifact.Data)), nil)

	slog.Info("recording session completed",
		"location", location,
		"duration_seconds", duration)

	return location, duration, nil
}

// fail returns the session to idle retaining the classified error
func (s *recordingService) fail(reason string, err error) {
	s.mu.Lock()
	s.transitionLocked(models.SessionStateIdle)
	s.lastErr = &models.SessionError{Reason: reason, Message: err.Error()}
	s.mu.Unlock()

	s.metrics.IncrementCounter("recording_session", map[string]string{"outcome": reason})
	slog.Warn("recording session failed", "reason", reason, "error", err)
}

func (s *recordingService) transitionLocked(to string) {
	if !models.CanTransitionTo(s.state, to) {
		slog.Error("illegal session transition", "from", s.state, "to", to)
	}
	s.state = to
}

func (s *recordingService) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *recordingService) Elapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

func (s *recordingService) LastError() *models.SessionError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// assembleArtifact concatenates the chunk sequence into one WAV file
func (s *recordingService) assembleArtifact(chunks [][]byte, duration int) (*models.AudioArtifact, error) {
	if len(chunks) == 0 {
		return nil, ErrNoAudioData
	}

	total := 0
	for _, chunk := range chunks {
		total += len(chunk)
	}

	pcm := make([]byte, 0, total)
	for _, chunk := range chunks {
		pcm = append(pcm, chunk...)
	}

	return &models.AudioArtifact{
		FileName:        fmt.Sprintf("recording-%d.wav", s.nowFn().UnixMilli()),
		MIMEType:        "audio/wav",
		Data:            encodeWAV(pcm),
		DurationSeconds: duration,
	}, nil
}

// encodeWAV wraps raw PCM in a RIFF/WAVE container (16 kHz, 16-bit mono)
func encodeWAV(pcm []byte) []byte {
	var buf bytes.Buffer

	byteRate := captureSampleRate * captureChannels * captureBitsPerSample / 8
	blockAlign := captureChannels * captureBitsPerSample / 8

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(captureChannels))
	binary.Write(&buf, binary.LittleEndian, uint32(captureSampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(captureBitsPerSample))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}
