package common

import (
	"strings"
)

// DefaultExtension is the container used when none is configured
const DefaultExtension = ".jpg"

// NormalizeExtension lower-cases the extension and makes sure it has a leading dot
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// ExtensionToMimeType returns the part content type sent for an extension.
// The subtype is the extension itself, so ".jpg" becomes "image/jpg".
func ExtensionToMimeType(ext string) string {
	return "image/" + strings.TrimPrefix(NormalizeExtension(ext), ".")
}

// IsSupportedExtension reports whether the client knows how to encode ext
func IsSupportedExtension(ext string) bool {
	switch NormalizeExtension(ext) {
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff":
		return true
	default:
		return false
	}
}
