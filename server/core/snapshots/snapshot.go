package snapshots

import (
	"strings"
)

// Format identifies an image container by its decoder name
type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatWebP Format = "webp"
)

var formatAliases = map[string]Format{
	"jpg":  FormatJPEG,
	"jpeg": FormatJPEG,
	"png":  FormatPNG,
	"gif":  FormatGIF,
	"bmp":  FormatBMP,
	"tif":  FormatTIFF,
	"tiff": FormatTIFF,
	"webp": FormatWebP,
}

// ParseFormat maps a file extension (with or without the dot) to a Format
func ParseFormat(ext string) (Format, error) {
	key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	if format, ok := formatAliases[key]; ok {
		return format, nil
	}
	return "", NewUnsupportedFormatError(ext)
}

// Upload is a single image received from a capture client
type Upload struct {
	FileName string
	Declared Format // Format claimed by the file name
	Data     []byte
}

// Snapshot describes the image persisted for an accepted upload
type Snapshot struct {
	Format Format
	Width  int
	Height int
	Size   int
	Digest string
	Path   string
}
