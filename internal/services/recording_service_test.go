package services

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"testing"
	"time"

	"voice-ledger/internal/models"

	"github.com/stretchr/testify/suite"
)

type fakeCaptureHandle struct {
	readErr  error
	chunk    []byte
	closed   int
	closeErr error
}

func (h *fakeCaptureHandle) ReadChunk() ([]byte, error) {
	if h.readErr != nil {
		return nil, h.readErr
	}
	return h.chunk, nil
}

func (h *fakeCaptureHandle) Close() error {
	h.closed++
	return h.closeErr
}

type fakeCaptureDevice struct {
	openErr error
	handle  *fakeCaptureHandle
}

func (d *fakeCaptureDevice) Open() (CaptureHandleInterface, error) {
	if d.openErr != nil {
		return nil, d.openErr
	}
	return d.handle, nil
}

type fakeRecordingSink struct {
	storeErr error
	location string
	stored   *models.AudioArtifact
}

func (s *fakeRecordingSink) Store(ctx context.Context, artifact *models.AudioArtifact) (string, error) {
	if s.storeErr != nil {
		return "", s.storeErr
	}
	s.stored = artifact
	return s.location, nil
}

// RecordingServiceSuite defines the test suite for RecordingServiceInterface
type RecordingServiceSuite struct {
	suite.Suite
	device  *fakeCaptureDevice
	sink    *fakeRecordingSink
	metrics *stubMetrics
	service *recordingService
}

// SetupTest runs before each test in the suite
func (s *RecordingServiceSuite) SetupTest() {
	s.device = &fakeCaptureDevice{handle: &fakeCaptureHandle{chunk: []byte{1, 2, 3, 4}}}
	s.sink = &fakeRecordingSink{location: "data/recordings/recording-1.wav"}
	s.metrics = newStubMetrics()
	s.service = NewRecordingService(s.device, s.sink, s.metrics).(*recordingService)
	// keep the background ticker quiet; tests drive tick() directly
	s.service.tickInterval = time.Hour
}

// TearDownTest runs after each test in the suite
func (s *RecordingServiceSuite) TearDownTest() {
	if cancel := s.service.cancelTick; cancel != nil {
		cancel()
	}
}

// TestRecordingServiceSuite runs the test suite
func TestRecordingServiceSuite(t *testing.T) {
	suite.Run(t, new(RecordingServiceSuite))
}

func (s *RecordingServiceSuite) TestStart() {
	s.NoError(s.service.Start())
	s.Equal(models.SessionStateRecording, s.service.State())
	s.Equal(0, s.service.Elapsed())
	s.Nil(s.service.LastError())
}

func (s *RecordingServiceSuite) TestStart_Reentrant() {
	s.NoError(s.service.Start())
	s.ErrorIs(s.service.Start(), ErrSessionBusy)
}

func (s *RecordingServiceSuite) TestStart_CaptureFailureClassified() {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{"permission denied", models.ErrCapturePermissionDenied, models.FailurePermissionDenied},
		{"device not found", models.ErrCaptureDeviceNotFound, models.FailureDeviceNotFound},
		{"constraint", models.ErrCaptureConstraint, models.FailureConstraintError},
		{"unknown", errors.New("weird failure"), models.FailureUnknown},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			service := NewRecordingService(&fakeCaptureDevice{openErr: tc.err}, s.sink, s.metrics).(*recordingService)

			err := service.Start()
			s.Error(err)
			s.Equal(models.SessionStateIdle, service.State())

			lastErr := service.LastError()
			s.Require().NotNil(lastErr)
			s.Equal(tc.expected, lastErr.Reason)
		})
	}
}

func (s *RecordingServiceSuite) TestTick_AccumulatesChunksAndElapsed() {
	s.NoError(s.service.Start())

	s.service.tick()
	s.service.tick()
	s.service.tick()

	s.Equal(3, s.service.Elapsed())
	s.Len(s.service.chunks, 3)
}

func (s *RecordingServiceSuite) TestTick_ReadErrorSkipsChunk() {
	s.NoError(s.service.Start())
	s.device.handle.readErr = errors.New("track gone")

	s.service.tick()

	// the elapsed second still counts, only the chunk is dropped
	s.Equal(1, s.service.Elapsed())
	s.Empty(s.service.chunks)
}

func (s *RecordingServiceSuite) TestTick_AfterStopHarmless() {
	s.NoError(s.service.Start())
	s.service.tick()

	_, _, err := s.service.Stop(context.Background())
	s.NoError(err)

	before := s.service.Elapsed()
	s.service.tick()
	s.Equal(before, s.service.Elapsed())
}

func (s *RecordingServiceSuite) TestStop_IdleNoop() {
	location, duration, err := s.service.Stop(context.Background())
	s.NoError(err)
	s.Empty(location)
	s.Zero(duration)
	s.Equal(models.SessionStateIdle, s.service.State())
}

func (s *RecordingServiceSuite) TestStop_Success() {
	at := time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)
	s.service.nowFn = fixedClock(at)

	s.NoError(s.service.Start())
	s.service.tick()
	s.service.tick()

	location, duration, err := s.service.Stop(context.Background())
	s.NoError(err)
	s.Equal(s.sink.location, location)
	s.Equal(2, duration)

	s.Equal(models.SessionStateIdle, s.service.State())
	s.Nil(s.service.LastError())
	s.Equal(1, s.device.handle.closed)

	s.Require().NotNil(s.sink.stored)
	s.Equal(fmt.Sprintf("recording-%d.wav", at.UnixMilli()), s.sink.stored.FileName)
	s.Equal("audio/wav", s.sink.stored.MIMEType)
	s.Equal(2, s.sink.stored.DurationSeconds)

	// two ticked chunks plus the final flush, wrapped in a 44-byte WAV header
	s.Len(s.sink.stored.Data, 44+3*len(s.device.handle.chunk))

	// chunk sequence and handle are discarded after the session
	s.Nil(s.service.chunks)
	s.Nil(s.service.handle)
}

func (s *RecordingServiceSuite) TestStop_WithinFirstSecondFlushesChunk() {
	s.NoError(s.service.Start())

	// stop before the first tick; the final flush supplies the audio
	location, duration, err := s.service.Stop(context.Background())
	s.NoError(err)
	s.Equal(s.sink.location, location)
	s.Zero(duration)

	s.Require().NotNil(s.sink.stored)
	s.Zero(s.sink.stored.DurationSeconds)
	s.Len(s.sink.stored.Data, 44+len(s.device.handle.chunk))
	s.Equal(models.SessionStateIdle, s.service.State())
	s.Nil(s.service.LastError())
}

func (s *RecordingServiceSuite) TestStop_NoAudioIsProcessingFailure() {
	s.NoError(s.service.Start())
	s.device.handle.readErr = errors.New("track gone")

	_, _, err := s.service.Stop(context.Background())
	s.ErrorIs(err, ErrNoAudioData)

	s.Equal(models.SessionStateIdle, s.service.State())
	lastErr := s.service.LastError()
	s.Require().NotNil(lastErr)
	s.Equal(models.FailureProcessingFailed, lastErr.Reason)
}

func (s *RecordingServiceSuite) TestStop_UploadFailureDiscardsArtifact() {
	s.sink.storeErr = errors.New("disk full")

	s.NoError(s.service.Start())
	s.service.tick()

	_, _, err := s.service.Stop(context.Background())
	s.Error(err)

	s.Equal(models.SessionStateIdle, s.service.State())
	lastErr := s.service.LastError()
	s.Require().NotNil(lastErr)
	s.Equal(models.FailureUploadFailed, lastErr.Reason)
	s.Nil(s.sink.stored)
	s.Nil(s.service.chunks)

	// the session is reusable after a failed upload
	s.sink.storeErr = nil
	s.NoError(s.service.Start())
}

func (s *RecordingServiceSuite) TestLastErrorClearedOnNextSuccess() {
	s.NoError(s.service.Start())
	s.device.handle.readErr = errors.New("track gone")
	_, _, err := s.service.Stop(context.Background())
	s.ErrorIs(err, ErrNoAudioData)
	s.NotNil(s.service.LastError())

	s.device.handle.readErr = nil
	s.NoError(s.service.Start())
	s.Nil(s.service.LastError())
}

func (s *RecordingServiceSuite) TestEncodeWAV() {
	pcm := make([]byte, 320)
	data := encodeWAV(pcm)

	s.Len(data, 44+len(pcm))
	s.Equal("RIFF", string(data[0:4]))
	s.Equal("WAVE", string(data[8:12]))
	s.Equal("data", string(data[36:40]))
	s.Equal(uint32(len(pcm)), binary.LittleEndian.Uint32(data[40:44]))
	s.Equal(uint16(captureChannels), binary.LittleEndian.Uint16(data[22:24]))
	s.Equal(uint32(captureSampleRate), binary.LittleEndian.Uint32(data[24:28]))
}
