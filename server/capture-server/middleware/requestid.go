package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yeti47/cryosnap/server/core/ccc/logging"
)

const (
	// RequestIDHeader carries the request ID in both directions
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
	maxRequestIDLen = 128
)

// RequestIDMiddleware tags every request with an ID and logs its outcome
type RequestIDMiddleware struct {
	logger logging.Logger
}

// NewRequestIDMiddleware creates a new request ID middleware
func NewRequestIDMiddleware(logger logging.Logger) *RequestIDMiddleware {
	if logger == nil {
		logger = logging.NopLogger
	}

	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Handle reuses a client supplied X-Request-ID or generates a new one
func (m *RequestIDMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = uuid.NewString()
		}

		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		m.logger.Debug("Request handled",
			"requestID", requestID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

// GetRequestID returns the ID assigned to the request, or "" outside the middleware
func GetRequestID(c *gin.Context) string {
	if value, exists := c.Get(requestIDKey); exists {
		if requestID, ok := value.(string); ok {
			return requestID
		}
	}
	return ""
}
