package frameencoding

import (
	"bytes"
	"errors"
	"fmt"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/yeti47/cryosnap/client/capture-client/common"
	"github.com/yeti47/cryosnap/client/capture-client/models"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// DefaultJpegQuality matches the quality OpenCV uses for imencode
const DefaultJpegQuality = 95

// ErrEmptyFrame is returned when there is nothing to encode
var ErrEmptyFrame = errors.New("frame is empty")

// UnsupportedFormatError is returned for an extension without an encoder
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported image format %q", e.Extension)
}

// FrameEncoder serializes frames into an image container
type FrameEncoder interface {
	// Encode returns the frame encoded in the container selected by ext (e.g. ".jpg")
	Encode(frame *models.Frame, ext string) (models.EncodedPayload, error)
}

// ImageEncoder implements FrameEncoder with Go image codecs.
// Output is deterministic for a given frame and extension.
type ImageEncoder struct {
	jpegQuality int
}

// NewImageEncoder creates an encoder; a quality outside 1..100 falls back to DefaultJpegQuality
func NewImageEncoder(jpegQuality int) *ImageEncoder {
	if jpegQuality < 1 || jpegQuality > 100 {
		jpegQuality = DefaultJpegQuality
	}
	return &ImageEncoder{jpegQuality: jpegQuality}
}

func (e *ImageEncoder) Encode(frame *models.Frame, ext string) (models.EncodedPayload, error) {
	if frame.IsEmpty() {
		return models.EncodedPayload{}, ErrEmptyFrame
	}

	ext = common.NormalizeExtension(ext)

	var buf bytes.Buffer
	var err error
	switch ext {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(&buf, frame.Image, &jpeg.Options{Quality: e.jpegQuality})
	case ".png":
		encoder := png.Encoder{CompressionLevel: png.DefaultCompression}
		err = encoder.Encode(&buf, frame.Image)
	case ".gif":
		err = gif.Encode(&buf, frame.Image, &gif.Options{NumColors: 256})
	case ".bmp":
		err = bmp.Encode(&buf, frame.Image)
	case ".tif", ".tiff":
		err = tiff.Encode(&buf, frame.Image, &tiff.Options{Compression: tiff.Deflate})
	default:
		return models.EncodedPayload{}, &UnsupportedFormatError{Extension: ext}
	}
	if err != nil {
		return models.EncodedPayload{}, fmt.Errorf("failed to encode frame as %s: %w", ext, err)
	}

	if buf.Len() == 0 {
		return models.EncodedPayload{}, fmt.Errorf("encoder produced no data for %s", ext)
	}

	return models.EncodedPayload{
		Data:      buf.Bytes(),
		Extension: ext,
	}, nil
}

// IsUnsupportedFormatError checks if the error is an UnsupportedFormatError
func IsUnsupportedFormatError(err error) bool {
	var target *UnsupportedFormatError
	return errors.As(err, &target)
}
