package webcam

import (
	"fmt"
	"image"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/yeti47/cryosnap/client/capture-client/capture"
	"github.com/yeti47/cryosnap/client/capture-client/models"
	"gocv.io/x/gocv"
)

// GoCVFrameSource implements capture.FrameSource on top of an OpenCV video capture.
// The device is opened by the constructor and owned until Close.
type GoCVFrameSource struct {
	device string
	webcam *gocv.VideoCapture
	raw    gocv.Mat
	gray   gocv.Mat
	mu     sync.Mutex
}

// NewGoCVFrameSource opens the capture device with the given index
func NewGoCVFrameSource(deviceID int) (*GoCVFrameSource, error) {
	webcam, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to open webcam: %w", err)
	}
	if !webcam.IsOpened() {
		webcam.Close()
		return nil, fmt.Errorf("failed to open webcam %d", deviceID)
	}

	width := int(webcam.Get(gocv.VideoCaptureFrameWidth))
	height := int(webcam.Get(gocv.VideoCaptureFrameHeight))
	log.Printf("Opened camera %d (%dx%d)", deviceID, width, height)

	return &GoCVFrameSource{
		device: strconv.Itoa(deviceID),
		webcam: webcam,
		raw:    gocv.NewMat(),
		gray:   gocv.NewMat(),
	}, nil
}

// Capture reads one frame and converts it to grayscale
func (s *GoCVFrameSource) Capture() (*models.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.webcam == nil {
		return nil, capture.NewCaptureError(s.device, "device is closed", nil)
	}

	if ok := s.webcam.Read(&s.raw); !ok {
		return nil, capture.NewCaptureError(s.device, "read failed", nil)
	}
	if s.raw.Empty() {
		return nil, capture.NewCaptureError(s.device, "empty frame", nil)
	}
	timestamp := time.Now()

	if s.raw.Channels() == 1 {
		s.raw.CopyTo(&s.gray)
	} else {
		gocv.CvtColor(s.raw, &s.gray, gocv.ColorBGRToGray)
	}

	img, err := MatToGray(s.gray)
	if err != nil {
		return nil, capture.NewCaptureError(s.device, "conversion failed", err)
	}

	return &models.Frame{Image: img, Timestamp: timestamp}, nil
}

// Close releases the device and the frame buffers
func (s *GoCVFrameSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.webcam == nil {
		return nil
	}

	err := s.webcam.Close()
	s.webcam = nil
	s.raw.Close()
	s.gray.Close()
	if err != nil {
		return fmt.Errorf("failed to release camera %s: %w", s.device, err)
	}
	return nil
}

// MatToGray copies a single channel 8-bit Mat into an image.Gray
func MatToGray(mat gocv.Mat) (*image.Gray, error) {
	if mat.Type() != gocv.MatTypeCV8UC1 {
		return nil, fmt.Errorf("expected 8-bit single channel mat, got type %v", mat.Type())
	}

	rows, cols := mat.Rows(), mat.Cols()
	img := image.NewGray(image.Rect(0, 0, cols, rows))
	data := mat.ToBytes()
	if len(data) < rows*cols {
		return nil, fmt.Errorf("mat holds %d bytes, expected %d", len(data), rows*cols)
	}
	copy(img.Pix, data[:rows*cols])
	return img, nil
}

// GrayToMat creates a Mat from a frame for display. The caller must Close it.
func GrayToMat(frame *models.Frame) (gocv.Mat, error) {
	if frame.IsEmpty() {
		return gocv.NewMat(), fmt.Errorf("frame is empty")
	}

	img := frame.Image
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	pix := img.Pix
	if img.Stride != width {
		pix = make([]byte, 0, width*height)
		for y := 0; y < height; y++ {
			start := y * img.Stride
			pix = append(pix, img.Pix[start:start+width]...)
		}
	}

	return gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC1, pix)
}
