package utils

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestDetectImageFormat_Encoded(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))

	encoders := map[string]func(*bytes.Buffer) error{
		"jpeg": func(b *bytes.Buffer) error { return jpeg.Encode(b, img, nil) },
		"png":  func(b *bytes.Buffer) error { return png.Encode(b, img) },
		"gif":  func(b *bytes.Buffer) error { return gif.Encode(b, img, nil) },
		"bmp":  func(b *bytes.Buffer) error { return bmp.Encode(b, img) },
		"tiff": func(b *bytes.Buffer) error { return tiff.Encode(b, img, nil) },
	}

	for expected, encode := range encoders {
		t.Run(expected, func(t *testing.T) {
			var buf bytes.Buffer
			if err := encode(&buf); err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			format, err := DetectImageFormat(buf.Bytes())
			if err != nil {
				t.Fatalf("DetectImageFormat failed: %v", err)
			}
			if format != expected {
				t.Errorf("Expected %s, got %q", expected, format)
			}
		})
	}
}

func TestDetectImageFormat_Signatures(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
		wantErr  bool
	}{
		{"webp", []byte("RIFF\x24\x00\x00\x00WEBPVP8 "), "webp", false},
		{"avi is not an image", []byte("RIFF\x24\x00\x00\x00AVI LIST"), "", false},
		{"big endian tiff", []byte{0x4D, 0x4D, 0x00, 0x2A, 0x00, 0x00}, "tiff", false},
		{"text", []byte("hello world"), "", false},
		{"too short", []byte{0xFF, 0xD8}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := DetectImageFormat(tt.data)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if format != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, format)
			}
		})
	}
}

func TestIsImageFile(t *testing.T) {
	ok, format, err := IsImageFile([]byte("GIF89a\x01\x00"))
	if err != nil || !ok || format != "gif" {
		t.Errorf("Expected gif, got %v %q %v", ok, format, err)
	}

	ok, _, err = IsImageFile([]byte("plain text"))
	if err != nil || ok {
		t.Errorf("Expected non-image, got %v %v", ok, err)
	}
}
