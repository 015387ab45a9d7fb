package snapshots

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// registers the webp decoder with image.Decode
	_ "golang.org/x/image/webp"
)

const (
	// DefaultJpegQuality is used when re-encoding into JPEG
	DefaultJpegQuality = 95
	// DefaultMaxPixels bounds width*height of an accepted upload
	DefaultMaxPixels int64 = 40_000_000
)

var errEmptyPayload = errors.New("empty payload")

// Decode decodes data with the registered decoders and checks the result
// against the declared format. Images above DefaultMaxPixels are rejected.
func Decode(data []byte, declared Format) (image.Image, error) {
	return DecodeLimited(data, declared, DefaultMaxPixels)
}

// DecodeLimited is Decode with an explicit pixel limit. The header is read
// first so oversized images are rejected before any pixel buffer is allocated.
// A non-positive maxPixels uses DefaultMaxPixels.
func DecodeLimited(data []byte, declared Format, maxPixels int64) (image.Image, error) {
	if len(data) == 0 {
		return nil, NewDecodeError(declared, errEmptyPayload)
	}
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}

	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, NewDecodeError(declared, err)
	}
	if actual := Format(name); actual != declared {
		return nil, NewFormatMismatchError(declared, actual)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, NewDecodeError(declared, fmt.Errorf("image has no pixels"))
	}
	if pixels := int64(cfg.Width) * int64(cfg.Height); pixels > maxPixels {
		return nil, NewDecodeError(declared, fmt.Errorf("image is %dx%d, limit is %d pixels", cfg.Width, cfg.Height, maxPixels))
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, NewDecodeError(declared, err)
	}

	return img, nil
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format Format, jpegQuality int) error {
	switch format {
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case FormatPNG:
		return png.Encode(w, img)
	case FormatGIF:
		return gif.Encode(w, img, &gif.Options{NumColors: 256})
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return NewUnsupportedFormatError(string(format))
	}
}

// CanEncode reports whether snapshots can be written in format
func CanEncode(format Format) bool {
	switch format {
	case FormatJPEG, FormatPNG, FormatGIF, FormatBMP, FormatTIFF:
		return true
	}
	return false
}

// isGray reports whether every pixel of img is a shade of gray
func isGray(img image.Image) bool {
	if _, ok := img.(*image.Gray); ok {
		return true
	}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r != g || g != b {
				return false
			}
		}
	}
	return true
}

// toGray converts img to a single channel image
func toGray(img image.Image) *image.Gray {
	if gray, ok := img.(*image.Gray); ok {
		return gray
	}
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x, y, color.GrayModel.Convert(img.At(x, y)))
		}
	}
	return gray
}
