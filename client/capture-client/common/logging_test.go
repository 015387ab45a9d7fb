package common

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSetupLogging_WritesDailyFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	dir := filepath.Join(t.TempDir(), "logs")
	closer := SetupLogging(dir, "capture-client")

	log.Print("Sent img.jpg")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	path := filepath.Join(dir, "capture-client-"+time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected log file %s: %v", path, err)
	}
	if !strings.Contains(string(data), "Sent img.jpg") {
		t.Errorf("Unexpected log content %q", data)
	}
}

func TestSetupLogging_ConsoleOnly(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	closer := SetupLogging("", "capture-client")
	if err := closer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
