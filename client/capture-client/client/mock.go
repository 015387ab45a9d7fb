package client

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/yeti47/cryosnap/client/capture-client/models"
)

// MockCaptureServerClient is a mock implementation for testing
type MockCaptureServerClient struct {
	uploads   []UploadRecord
	outputDir string
	failWith  error
	mu        sync.Mutex
}

// UploadRecord tracks uploaded snapshots for testing
type UploadRecord struct {
	Timestamp   time.Time
	Size        int
	FileName    string
	ContentType string
	Data        []byte
	FilePath    string // Path where the snapshot was saved, empty if not saved
}

// NewMockCaptureServerClient creates a new mock client. When outputDir is
// not empty every upload is also written there.
func NewMockCaptureServerClient(outputDir string) *MockCaptureServerClient {
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			log.Printf("[MOCK] Warning: Failed to create output directory %s: %v", outputDir, err)
			outputDir = ""
		} else {
			log.Printf("[MOCK] Created output directory: %s", outputDir)
		}
	}

	return &MockCaptureServerClient{
		uploads:   make([]UploadRecord, 0),
		outputDir: outputDir,
	}
}

// UploadSnapshot simulates uploading a snapshot
func (m *MockCaptureServerClient) UploadSnapshot(ctx context.Context, payload models.EncodedPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		log.Printf("[MOCK] Rejecting upload of %d bytes: %v", len(payload.Data), m.failWith)
		return m.failWith
	}

	record := UploadRecord{
		Timestamp:   time.Now(),
		Size:        len(payload.Data),
		FileName:    payload.FileName(),
		ContentType: payload.ContentType(),
		Data:        append([]byte(nil), payload.Data...),
	}

	if m.outputDir != "" {
		name := fmt.Sprintf("%s_%s", time.Now().UTC().Format("2006-01-02T15-04-05.000"), payload.FileName())
		filePath := filepath.Join(m.outputDir, name)
		if err := os.WriteFile(filePath, payload.Data, 0644); err != nil {
			log.Printf("[MOCK] Failed to save snapshot to %s: %v", filePath, err)
			return NewTransportError(fmt.Errorf("failed to save snapshot: %w", err))
		}
		record.FilePath = filePath
	}

	m.uploads = append(m.uploads, record)

	log.Printf("[MOCK] Upload completed: %s (%d bytes, %s). Total uploads: %d",
		record.FileName, record.Size, record.ContentType, len(m.uploads))
	return nil
}

// FailWith makes every following upload return err; nil restores success
func (m *MockCaptureServerClient) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

// GetUploads returns all recorded uploads (for testing purposes)
func (m *MockCaptureServerClient) GetUploads() []UploadRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	uploads := make([]UploadRecord, len(m.uploads))
	copy(uploads, m.uploads)
	return uploads
}

// GetOutputDirectory returns the directory where snapshots are saved
func (m *MockCaptureServerClient) GetOutputDirectory() string {
	return m.outputDir
}
