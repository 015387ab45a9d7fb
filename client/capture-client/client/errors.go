package client

import (
	"errors"
	"fmt"
)

// TransmitErrorKind classifies why an upload was not accepted
type TransmitErrorKind int

const (
	// RequestFailure means the request could not be built
	RequestFailure TransmitErrorKind = iota
	// TransportFailure covers connection refused, DNS, TLS and timeouts
	TransportFailure
	// StatusFailure means the server answered with a status other than 200
	StatusFailure
)

func (k TransmitErrorKind) String() string {
	switch k {
	case RequestFailure:
		return "request"
	case TransportFailure:
		return "transport"
	case StatusFailure:
		return "status"
	default:
		return "unknown"
	}
}

// TransmitError represents a failed snapshot upload
type TransmitError struct {
	Kind       TransmitErrorKind
	StatusCode int    // set for StatusFailure
	Body       string // truncated response body for StatusFailure
	InnerError error
}

func (e *TransmitError) Error() string {
	switch {
	case e.Kind == StatusFailure:
		if e.Body != "" {
			return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Body)
		}
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	case e.InnerError != nil:
		return fmt.Sprintf("%s error during upload: %v", e.Kind, e.InnerError)
	default:
		return fmt.Sprintf("%s error during upload", e.Kind)
	}
}

func (e *TransmitError) Unwrap() error {
	return e.InnerError
}

// NewRequestError creates a TransmitError for a request that could not be built
func NewRequestError(inner error) *TransmitError {
	return &TransmitError{Kind: RequestFailure, InnerError: inner}
}

// NewTransportError creates a TransmitError for a network level failure
func NewTransportError(inner error) *TransmitError {
	return &TransmitError{Kind: TransportFailure, InnerError: inner}
}

// NewStatusError creates a TransmitError for a non-200 response
func NewStatusError(statusCode int, body string) *TransmitError {
	return &TransmitError{Kind: StatusFailure, StatusCode: statusCode, Body: body}
}

// IsTransmitError checks if the error is a TransmitError
func IsTransmitError(err error) bool {
	var target *TransmitError
	return errors.As(err, &target)
}

// IsTransportError returns true if the upload failed below HTTP
func IsTransportError(err error) bool {
	var target *TransmitError
	return errors.As(err, &target) && target.Kind == TransportFailure
}

// IsStatusError returns true if the server rejected the upload
func IsStatusError(err error) bool {
	var target *TransmitError
	return errors.As(err, &target) && target.Kind == StatusFailure
}

// Accepted reports whether an UploadSnapshot result means the server took the frame
func Accepted(err error) bool {
	return err == nil
}
