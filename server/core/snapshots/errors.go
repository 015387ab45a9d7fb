package snapshots

import (
	"errors"
	"fmt"
)

// UnsupportedFormatError is returned for extensions no decoder is registered for
type UnsupportedFormatError struct {
	Extension string
}

// FormatMismatchError is returned when the content does not match the declared format
type FormatMismatchError struct {
	Declared Format
	Actual   Format
}

// DecodeError is returned when the payload cannot be decoded
type DecodeError struct {
	Format Format
	Err    error
}

// StorageError is returned when the decoded image cannot be persisted
type StorageError struct {
	Path string
	Err  error
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported image format: %q", e.Extension)
}

func (e *FormatMismatchError) Error() string {
	return fmt.Sprintf("declared format %s does not match content format %s", e.Declared, e.Actual)
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s image: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to store snapshot at %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewUnsupportedFormatError(ext string) error {
	return &UnsupportedFormatError{Extension: ext}
}

func NewFormatMismatchError(declared, actual Format) error {
	return &FormatMismatchError{Declared: declared, Actual: actual}
}

func NewDecodeError(format Format, err error) error {
	return &DecodeError{Format: format, Err: err}
}

func NewStorageError(path string, err error) error {
	return &StorageError{Path: path, Err: err}
}

// helper functions for error handling

func IsUnsupportedFormatError(err error) bool {
	var target *UnsupportedFormatError
	return errors.As(err, &target)
}

func IsFormatMismatchError(err error) bool {
	var target *FormatMismatchError
	return errors.As(err, &target)
}

func IsDecodeError(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}

func IsStorageError(err error) bool {
	var target *StorageError
	return errors.As(err, &target)
}
