package middleware

import (
	"github.com/notefold/notes-service/internal/domain"
	"github.com/notefold/notes-service/internal/service"
	"github.com/notefold/notes-service/pkg/app"
	"github.com/notefold/notes-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key holding the authenticated user.
const IdentityKey = "identity"

// UserAuthToken authenticates the request with the Authorization header
// and stores the resolved identity in the context. Any failure aborts
// with the uniform unauthorized error.
func UserAuthToken(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := app.NewResponse(c)

		identity, err := auth.Verify(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			response.ToResponse(code.ErrorUnauthorizedAccess)
			c.Abort()
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// GetIdentity returns the authenticated user placed by UserAuthToken.
func GetIdentity(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
