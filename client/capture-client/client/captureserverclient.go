package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/yeti47/cryosnap/client/capture-client/models"
)

// maxErrorBodyBytes bounds how much of an error response is kept for logging
const maxErrorBodyBytes = 512

// CaptureServerClient handles communication with the capture server
type CaptureServerClient interface {
	// UploadSnapshot posts a single encoded frame. It makes exactly one attempt;
	// a nil error means the server answered 200.
	UploadSnapshot(ctx context.Context, payload models.EncodedPayload) error
}

// captureServerClient implements CaptureServerClient using HTTP
type captureServerClient struct {
	uploadURL  string
	httpClient *http.Client
}

// NewCaptureServerClient creates a new HTTP client posting to uploadURL.
// A zero timeout leaves the transport default in place.
func NewCaptureServerClient(uploadURL string, timeout time.Duration) CaptureServerClient {
	return &captureServerClient{
		uploadURL: uploadURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// UploadSnapshot uploads an encoded frame as multipart/form-data
func (s *captureServerClient) UploadSnapshot(ctx context.Context, payload models.EncodedPayload) error {
	if len(payload.Data) == 0 {
		return NewRequestError(fmt.Errorf("refusing to upload empty payload"))
	}

	body, contentType, err := buildMultipartBody(payload)
	if err != nil {
		return NewRequestError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.uploadURL, body)
	if err != nil {
		return NewRequestError(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return NewTransportError(fmt.Errorf("failed to make request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return NewStatusError(resp.StatusCode, string(msg))
	}

	// Drain so the connection can be reused
	io.Copy(io.Discard, resp.Body)
	return nil
}

// buildMultipartBody writes the single "img" part with its own content type
func buildMultipartBody(payload models.EncodedPayload) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, models.UploadFieldName, payload.FileName()))
	header.Set("Content-Type", payload.ContentType())

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err := part.Write(payload.Data); err != nil {
		return nil, "", fmt.Errorf("failed to write image data: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close writer: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}
