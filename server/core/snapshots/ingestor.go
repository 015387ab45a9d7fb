package snapshots

import (
	"github.com/yeti47/cryosnap/server/core/ccc/logging"
)

// Ingestor validates uploads and persists them as the latest snapshot
type Ingestor interface {
	Ingest(upload Upload) (*Snapshot, error)
}

type ingestor struct {
	logger    logging.Logger
	store     Store
	maxPixels int64
}

// NewIngestor creates a new Ingestor rejecting images above maxPixels.
// A non-positive maxPixels uses DefaultMaxPixels.
func NewIngestor(logger logging.Logger, store Store, maxPixels int64) Ingestor {
	if logger == nil {
		logger = logging.NopLogger
	}
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}

	return &ingestor{
		logger:    logger,
		store:     store,
		maxPixels: maxPixels,
	}
}

// Ingest decodes the upload and writes it to the store. Nothing is written
// unless the payload decodes as the declared format.
func (i *ingestor) Ingest(upload Upload) (*Snapshot, error) {
	img, err := DecodeLimited(upload.Data, upload.Declared, i.maxPixels)
	if err != nil {
		i.logger.Warn("Rejected snapshot upload", "filename", upload.FileName, "error", err)
		return nil, err
	}

	bounds := img.Bounds()
	digest := Digest(upload.Data)

	path, err := i.store.Save(img, upload.Data, upload.Declared)
	if err != nil {
		i.logger.Error("Failed to store snapshot", "filename", upload.FileName, "error", err)
		return nil, err
	}

	snapshot := &Snapshot{
		Format: upload.Declared,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Size:   len(upload.Data),
		Digest: digest,
		Path:   path,
	}

	i.logger.Info("Stored snapshot",
		"filename", upload.FileName,
		"format", snapshot.Format,
		"width", snapshot.Width,
		"height", snapshot.Height,
		"size", snapshot.Size,
		"digest", snapshot.Digest,
		"path", snapshot.Path)

	return snapshot, nil
}
