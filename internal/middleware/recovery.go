package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/notefold/notes-service/pkg/app"
	"github.com/notefold/notes-service/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryWithLogger turns panics into an internal-error response and
// logs the stack.
func RecoveryWithLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Recovered from panic",
					zap.String("router", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.String("ip", app.GetRequestIP(c)),
					zap.String("panic", fmt.Sprintf("%v", err)),
					zap.String("stack", string(debug.Stack())),
				)

				response := app.NewResponse(c)
				response.ToResponse(code.ErrorServerInternal)
				c.Abort()
			}
		}()
		c.Next()
	}
}
