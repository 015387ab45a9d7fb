package snapshots

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestDecode_JPEG(t *testing.T) {
	data := encodeJPEG(t, testGray(32, 24))

	img, err := Decode(data, FormatJPEG)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 24 {
		t.Errorf("Unexpected bounds %v", img.Bounds())
	}
}

func TestDecode_XImageFormats(t *testing.T) {
	src := testGray(16, 8)

	var bmpBuf, tiffBuf bytes.Buffer
	if err := bmp.Encode(&bmpBuf, src); err != nil {
		t.Fatalf("bmp.Encode failed: %v", err)
	}
	if err := tiff.Encode(&tiffBuf, src, nil); err != nil {
		t.Fatalf("tiff.Encode failed: %v", err)
	}

	for format, data := range map[Format][]byte{FormatBMP: bmpBuf.Bytes(), FormatTIFF: tiffBuf.Bytes()} {
		img, err := Decode(data, format)
		if err != nil {
			t.Errorf("Decode(%s) failed: %v", format, err)
			continue
		}
		if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
			t.Errorf("Decode(%s) bounds %v", format, img.Bounds())
		}
	}
}

func TestDecode_FormatMismatch(t *testing.T) {
	data := encodePNG(t, testGray(8, 8))

	_, err := Decode(data, FormatJPEG)
	if !IsFormatMismatchError(err) {
		t.Fatalf("Expected FormatMismatchError, got %v", err)
	}
}

func TestDecode_Corrupt(t *testing.T) {
	data := encodeJPEG(t, testGray(64, 64))

	tests := map[string][]byte{
		"empty":     nil,
		"garbage":   []byte("this is not an image at all"),
		"truncated": data[:len(data)/3],
	}

	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(payload, FormatJPEG)
			if !IsDecodeError(err) {
				t.Errorf("Expected DecodeError, got %v", err)
			}
		})
	}
}

func TestEncode_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, testGray(4, 4), FormatWebP, DefaultJpegQuality)
	if !IsUnsupportedFormatError(err) {
		t.Errorf("Expected UnsupportedFormatError, got %v", err)
	}
	if CanEncode(FormatWebP) {
		t.Error("webp should not be encodable")
	}
}

func TestDecodeLimited_RejectsOversizedHeader(t *testing.T) {
	data := pngHeader(75000, 75000)

	_, err := DecodeLimited(data, FormatPNG, DefaultMaxPixels)
	if !IsDecodeError(err) {
		t.Fatalf("Expected DecodeError, got %v", err)
	}
	if !strings.Contains(err.Error(), "75000x75000") {
		t.Errorf("Expected dimensions in error, got %v", err)
	}
}

func TestDecodeLimited_CustomLimit(t *testing.T) {
	data := encodePNG(t, testGray(16, 16))

	if _, err := DecodeLimited(data, FormatPNG, 255); !IsDecodeError(err) {
		t.Errorf("Expected DecodeError for 256 pixels over a limit of 255, got %v", err)
	}
	if _, err := DecodeLimited(data, FormatPNG, 256); err != nil {
		t.Errorf("Expected 256 pixels to pass a limit of 256, got %v", err)
	}
	if _, err := DecodeLimited(data, FormatPNG, 0); err != nil {
		t.Errorf("Non-positive limit should fall back to the default, got %v", err)
	}
}
