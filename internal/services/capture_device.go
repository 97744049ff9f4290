package services

import (
	"errors"
	"sync"
)

var errClosedHandle = errors.New("capture handle closed")

const (
	captureSampleRate    = 16000
	captureBitsPerSample = 16
	captureChannels      = 1

	// one second of PCM silence per chunk
	captureChunkBytes = captureSampleRate * captureBitsPerSample / 8 * captureChannels
)

// simulatedCaptureDevice produces synthetic silence chunks. There is no real
// microphone binding; the device exists to exercise the session state machine.
type simulatedCaptureDevice struct{}

// NewSimulatedCaptureDevice creates the shipped capture device
func NewSimulatedCaptureDevice() CaptureDeviceInterface {
	return &simulatedCaptureDevice{}
}

func (d *simulatedCaptureDevice) Open() (CaptureHandleInterface, error) {
	return &simulatedCaptureHandle{}, nil
}

type simulatedCaptureHandle struct {
	mu     sync.Mutex
	closed bool
}

func (h *simulatedCaptureHandle) ReadChunk() ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, errClosedHandle
	}
	return make([]byte, captureChunkBytes), nil
}

func (h *simulatedCaptureHandle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	return nil
}
