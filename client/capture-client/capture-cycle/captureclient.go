package capturecycle

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/yeti47/cryosnap/client/capture-client/capture"
	"github.com/yeti47/cryosnap/client/capture-client/client"
	frameencoding "github.com/yeti47/cryosnap/client/capture-client/frame-encoding"
	"github.com/yeti47/cryosnap/client/capture-client/models"
	"github.com/yeti47/cryosnap/client/capture-client/overlay"
	"github.com/yeti47/cryosnap/client/capture-client/schedule"
)

// CycleResult describes what happened during one cycle
type CycleResult struct {
	Decision schedule.Decision
	// Frame is the captured frame (with countdown on preview cycles), nil if capture failed
	Frame *models.Frame
	// Sent is true only when the server accepted the upload
	Sent bool
	// CaptureErr and UploadErr are logged and never stop the loop
	CaptureErr error
	UploadErr  error
}

// CaptureClient wires the frame source, schedule, encoder and transmitter together.
// It is driven by one RunCycle call per loop iteration and is not safe for
// concurrent cycles.
type CaptureClient struct {
	source      capture.FrameSource
	schedule    *schedule.Controller
	encoder     frameencoding.FrameEncoder
	transmitter client.CaptureServerClient
	overlay     overlay.Renderer
	extension   string
}

// NewCaptureClient creates a new capture client with injected dependencies.
// A nil renderer disables the countdown overlay.
func NewCaptureClient(
	source capture.FrameSource,
	controller *schedule.Controller,
	encoder frameencoding.FrameEncoder,
	transmitter client.CaptureServerClient,
	renderer overlay.Renderer,
	extension string,
) *CaptureClient {
	return &CaptureClient{
		source:      source,
		schedule:    controller,
		encoder:     encoder,
		transmitter: transmitter,
		overlay:     renderer,
		extension:   extension,
	}
}

// RunCycle executes a single capture cycle at now.
// The returned error is only set when encoding fails; capture and upload
// failures are reported in the result and logged.
func (c *CaptureClient) RunCycle(ctx context.Context, now time.Time) (CycleResult, error) {
	// The deadline is consumed before capturing so a broken device cannot
	// cause back-to-back send attempts.
	decision := c.schedule.Tick(now)
	result := CycleResult{Decision: decision}

	frame, err := c.source.Capture()
	if err != nil {
		log.Printf("Error: %v", err)
		result.CaptureErr = err
		return result, nil
	}
	result.Frame = frame

	if decision == schedule.Preview {
		if c.overlay != nil {
			c.overlay.RenderCountdown(frame, c.schedule.Remaining(now))
		}
		return result, nil
	}

	payload, err := c.encoder.Encode(frame, c.extension)
	if err != nil {
		return result, fmt.Errorf("failed to encode frame: %w", err)
	}

	if err := c.transmitter.UploadSnapshot(ctx, payload); err != nil {
		log.Printf("Error: %v", err)
		result.UploadErr = err
		return result, nil
	}

	log.Printf("Sent %s (%d bytes, %dx%d)", payload.FileName(), len(payload.Data), frame.Width(), frame.Height())
	result.Sent = true
	return result, nil
}

// Close releases the frame source
func (c *CaptureClient) Close() error {
	return c.source.Close()
}
