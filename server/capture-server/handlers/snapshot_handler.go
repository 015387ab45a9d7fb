package handlers

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/yeti47/cryosnap/server/capture-server/middleware"
	"github.com/yeti47/cryosnap/server/capture-server/utils"
	"github.com/yeti47/cryosnap/server/core/ccc/logging"
	"github.com/yeti47/cryosnap/server/core/snapshots"
)

const (
	// SnapshotFieldName is the multipart field carrying the image
	SnapshotFieldName = "img"
	// DigestHeader carries the BLAKE2b-256 digest of an accepted upload
	DigestHeader = "X-Snapshot-Digest"
)

// SnapshotHandler handles snapshot uploads from capture clients
type SnapshotHandler struct {
	logger         logging.Logger
	ingestor       snapshots.Ingestor
	maxUploadBytes int64
}

// NewSnapshotHandler creates a new snapshot handler. A non-positive
// maxUploadBytes disables the size limit.
func NewSnapshotHandler(logger logging.Logger, ingestor snapshots.Ingestor, maxUploadBytes int64) *SnapshotHandler {
	if logger == nil {
		logger = logging.NopLogger
	}

	return &SnapshotHandler{
		logger:         logger,
		ingestor:       ingestor,
		maxUploadBytes: maxUploadBytes,
	}
}

// UploadSnapshot handles POST /camera
func (h *SnapshotHandler) UploadSnapshot(c *gin.Context) {
	logger := h.logger.With("requestID", middleware.GetRequestID(c))

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	fileHeader, err := c.FormFile(SnapshotFieldName)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			logger.Warn("Upload too large", "limit", maxBytesErr.Limit)
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Upload exceeds size limit"})
			return
		}
		logger.Warn("Failed to get uploaded file", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required in field '" + SnapshotFieldName + "'"})
		return
	}

	logger.Info("Received snapshot upload", "filename", fileHeader.Filename, "size", fileHeader.Size)

	declared, err := snapshots.ParseFormat(filepath.Ext(fileHeader.Filename))
	if err != nil {
		logger.Warn("Unsupported image format", "filename", fileHeader.Filename)
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded file", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	// Validate that the content really is the declared image type
	isImage, actual, err := utils.IsImageFile(data)
	if err != nil {
		logger.Warn("Failed to validate file type", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to validate file type"})
		return
	}
	if !isImage {
		logger.Warn("Uploaded file is not an image", "filename", fileHeader.Filename)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Uploaded file is not a valid image format"})
		return
	}
	if snapshots.Format(actual) != declared {
		logger.Warn("Uploaded file does not match its extension", "declared", declared, "actual", actual)
		c.JSON(http.StatusBadRequest, gin.H{"error": snapshots.NewFormatMismatchError(declared, snapshots.Format(actual)).Error()})
		return
	}

	snapshot, err := h.ingestor.Ingest(snapshots.Upload{
		FileName: fileHeader.Filename,
		Declared: declared,
		Data:     data,
	})
	if err != nil {
		switch {
		case snapshots.IsDecodeError(err), snapshots.IsFormatMismatchError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case snapshots.IsUnsupportedFormatError(err):
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to store snapshot", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store snapshot"})
		}
		return
	}

	c.Header(DigestHeader, snapshot.Digest)
	c.JSON(http.StatusOK, gin.H{
		"message": "Snapshot stored successfully",
		"format":  snapshot.Format,
		"width":   snapshot.Width,
		"height":  snapshot.Height,
		"size":    snapshot.Size,
	})
}
