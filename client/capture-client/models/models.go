package models

import (
	"image"
	"time"

	"github.com/yeti47/cryosnap/client/capture-client/common"
)

// UploadFieldName is the multipart field carrying the snapshot
const UploadFieldName = "img"

// Frame is a single grayscale still captured from the device
type Frame struct {
	Image     *image.Gray
	Timestamp time.Time
}

// Width returns the frame width in pixels
func (f *Frame) Width() int {
	if f == nil || f.Image == nil {
		return 0
	}
	return f.Image.Bounds().Dx()
}

// Height returns the frame height in pixels
func (f *Frame) Height() int {
	if f == nil || f.Image == nil {
		return 0
	}
	return f.Image.Bounds().Dy()
}

// IsEmpty reports whether the frame carries no pixels
func (f *Frame) IsEmpty() bool {
	return f.Width() == 0 || f.Height() == 0
}

// EncodedPayload is the encoded form of exactly one frame
type EncodedPayload struct {
	Data      []byte
	Extension string // includes the leading dot, e.g. ".jpg"
}

// FileName returns the synthetic upload file name, e.g. "img.jpg"
func (p EncodedPayload) FileName() string {
	return UploadFieldName + common.NormalizeExtension(p.Extension)
}

// ContentType returns the part content type, e.g. "image/jpg"
func (p EncodedPayload) ContentType() string {
	return common.ExtensionToMimeType(p.Extension)
}
