package main

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yeti47/cryosnap/server/capture-server/handlers"
	"github.com/yeti47/cryosnap/server/core/snapshots"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store, err := snapshots.NewFileStore(filepath.Join(t.TempDir(), snapshotPath))
	if err != nil {
		t.Fatal(err)
	}
	router := gin.New()
	setupRoutes(router, handlers.NewSnapshotHandler(nil, snapshots.NewIngestor(nil, store, 0), 0))

	tests := []struct {
		method   string
		path     string
		expected int
	}{
		{http.MethodGet, "/status", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodPost, "/camera", http.StatusBadRequest},
		{http.MethodGet, "/camera", http.StatusNotFound},
		{http.MethodPost, "/api/clips", http.StatusNotFound},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		if w.Code != tt.expected {
			t.Errorf("%s %s: expected %d, got %d", tt.method, tt.path, tt.expected, w.Code)
		}
	}
}
