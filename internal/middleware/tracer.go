package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// TraceIDHeader is the request/response header carrying the trace id.
	TraceIDHeader = "X-Trace-ID"
	// TraceIDKey is the context key storing the trace id.
	TraceIDKey = "trace_id"
)

// TraceMiddleware assigns every request a trace id: taken from the
// inbound header when present, generated otherwise. The id is stored in
// both the gin context and the request context and echoed back in the
// response header.
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		c.Set(TraceIDKey, traceID)

		ctx := context.WithValue(c.Request.Context(), TraceIDKey, traceID)
		c.Request = c.Request.WithContext(ctx)

		c.Header(TraceIDHeader, traceID)

		c.Next()
	}
}

// GetTraceIDFromGin returns the trace id assigned to the request.
func GetTraceIDFromGin(c *gin.Context) string {
	return c.GetString(TraceIDKey)
}
