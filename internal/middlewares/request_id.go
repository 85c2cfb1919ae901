package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sqlpractice/internal/logging"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID when it is a valid UUID and
// generates one otherwise. The id is stored in the context as "requestId"
// and echoed in the response header.
func RequestID(c *gin.Context) {
	id, err := uuid.Parse(c.GetHeader(RequestIDHeader))
	if err != nil {
		id = uuid.New()
	}

	c.Set("requestId", id)
	c.Header(RequestIDHeader, id.String())

	c.Next()
}

// AccessLog writes one structured record per API request.
func AccessLog(c *gin.Context) {
	start := time.Now()
	c.Next()

	requestID, _ := c.Get("requestId")
	logging.WithComponent("http").Info("request",
		"request_id", requestID,
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
