package models

import (
	"image"
	"testing"
)

func TestEncodedPayload_UploadNames(t *testing.T) {
	payload := EncodedPayload{Data: []byte{0xFF}, Extension: ".jpg"}

	if got := payload.FileName(); got != "img.jpg" {
		t.Errorf("Expected file name img.jpg, got %s", got)
	}
	if got := payload.ContentType(); got != "image/jpg" {
		t.Errorf("Expected content type image/jpg, got %s", got)
	}

	png := EncodedPayload{Extension: "png"}
	if got := png.FileName(); got != "img.png" {
		t.Errorf("Expected file name img.png, got %s", got)
	}
}

func TestFrame_Dimensions(t *testing.T) {
	var nilFrame *Frame
	if !nilFrame.IsEmpty() {
		t.Error("nil frame should be empty")
	}

	frame := &Frame{Image: image.NewGray(image.Rect(0, 0, 64, 48))}
	if frame.Width() != 64 || frame.Height() != 48 {
		t.Errorf("Expected 64x48, got %dx%d", frame.Width(), frame.Height())
	}
	if frame.IsEmpty() {
		t.Error("frame with pixels should not be empty")
	}
}
