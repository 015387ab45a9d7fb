package snapshots

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store persists the latest snapshot.
//
// Implementations write to a single destination and are not synchronized:
// concurrent saves race and the last completed one wins.
type Store interface {
	// Save writes the image and returns the destination path.
	// raw holds the validated upload bytes in the given format.
	Save(img image.Image, raw []byte, format Format) (string, error)
	Path() string
}

// FileStore overwrites one file on disk with every snapshot
type FileStore struct {
	path        string
	format      Format
	jpegQuality int
}

// NewFileStore creates a store writing to path; the extension decides the stored format
func NewFileStore(path string) (*FileStore, error) {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot path %s: %w", path, err)
	}
	if !CanEncode(format) {
		return nil, fmt.Errorf("invalid snapshot path %s: %w", path, NewUnsupportedFormatError(string(format)))
	}

	return &FileStore{
		path:        path,
		format:      format,
		jpegQuality: DefaultJpegQuality,
	}, nil
}

// Path returns the destination path
func (s *FileStore) Path() string {
	return s.path
}

// Save writes the snapshot to a temporary file next to the destination and
// renames it into place, so a failed write leaves the previous snapshot intact.
// Uploads already in the stored format are written byte for byte.
func (s *FileStore) Save(img image.Image, raw []byte, format Format) (string, error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", NewStorageError(s.path, err)
	}

	tempPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(s.path), uuid.NewString()))
	if err := s.writeTemp(tempPath, img, raw, format); err != nil {
		os.Remove(tempPath)
		return "", NewStorageError(s.path, err)
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return "", NewStorageError(s.path, err)
	}

	return s.path, nil
}

func (s *FileStore) writeTemp(tempPath string, img image.Image, raw []byte, format Format) error {
	file, err := os.OpenFile(tempPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	if err := s.writeImage(file, img, raw, format); err != nil {
		file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// writeImage writes raw verbatim when it is already in the stored format and
// re-encodes img otherwise
func (s *FileStore) writeImage(w io.Writer, img image.Image, raw []byte, format Format) error {
	if format == s.format && len(raw) > 0 {
		_, err := w.Write(raw)
		return err
	}

	if img == nil {
		return fmt.Errorf("no image to encode")
	}
	if isGray(img) {
		img = toGray(img)
	}

	writer := bufio.NewWriter(w)
	if err := Encode(writer, img, s.format, s.jpegQuality); err != nil {
		return fmt.Errorf("failed to encode %s: %w", s.format, err)
	}
	return writer.Flush()
}
