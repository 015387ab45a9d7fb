package capture

import (
	"errors"
	"fmt"

	"github.com/yeti47/cryosnap/client/capture-client/models"
)

// FrameSource produces one grayscale still per call
type FrameSource interface {
	// Capture reads a single frame from the device
	Capture() (*models.Frame, error)
	// Close releases the device
	Close() error
}

// CaptureError represents a failed read from the capture device.
// It is not fatal: the cycle simply has no frame.
type CaptureError struct {
	Device     string
	Reason     string
	InnerError error
}

func (e *CaptureError) Error() string {
	if e.InnerError != nil {
		return fmt.Sprintf("could not read frame from device %s: %s: %v", e.Device, e.Reason, e.InnerError)
	}
	return fmt.Sprintf("could not read frame from device %s: %s", e.Device, e.Reason)
}

func (e *CaptureError) Unwrap() error {
	return e.InnerError
}

// NewCaptureError creates a new CaptureError
func NewCaptureError(device, reason string, inner error) *CaptureError {
	return &CaptureError{
		Device:     device,
		Reason:     reason,
		InnerError: inner,
	}
}

// IsCaptureError checks if the error is a CaptureError
func IsCaptureError(err error) bool {
	var target *CaptureError
	return errors.As(err, &target)
}
