package utils

import (
	"bytes"
	"fmt"
)

// ImageMagicBytes contains image file magic byte signatures
var ImageMagicBytes = map[string][][]byte{
	"jpeg": {{0xFF, 0xD8, 0xFF}},
	"png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	"gif":  {[]byte("GIF87a"), []byte("GIF89a")},
	"bmp":  {[]byte("BM")},
	"tiff": {{0x49, 0x49, 0x2A, 0x00}, {0x4D, 0x4D, 0x00, 0x2A}}, // little and big endian
}

// minSniffLength is the shortest payload that can be classified
const minSniffLength = 4

// DetectImageFormat examines the magic bytes at the beginning of data and
// returns the image format name, or "" if the format is not recognized
func DetectImageFormat(data []byte) (string, error) {
	if len(data) < minSniffLength {
		return "", fmt.Errorf("data too short to determine file type")
	}

	for format, signatures := range ImageMagicBytes {
		for _, magic := range signatures {
			if len(data) >= len(magic) && bytes.Equal(data[:len(magic)], magic) {
				return format, nil
			}
		}
	}

	// WebP files are RIFF containers with a WEBP form type
	if len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")) {
		return "webp", nil
	}

	return "", nil
}

// IsImageFile checks if the provided data appears to be an image file
func IsImageFile(data []byte) (bool, string, error) {
	format, err := DetectImageFormat(data)
	if err != nil {
		return false, "", err
	}
	return format != "", format, nil
}
