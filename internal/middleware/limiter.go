package middleware

import (
	"github.com/notefold/notes-service/pkg/app"
	"github.com/notefold/notes-service/pkg/code"
	"github.com/notefold/notes-service/pkg/limiter"

	"github.com/gin-gonic/gin"
)

// RateLimiter short-circuits requests whose bucket has no tokens left.
func RateLimiter(l limiter.Face) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := l.Key(c)
		if bucket, ok := l.GetBucket(key); ok {
			count := bucket.TakeAvailable(1)
			if count == 0 {
				response := app.NewResponse(c)
				response.ToResponse(code.ErrorTooManyRequests)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
