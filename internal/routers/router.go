package routers

import (
	"time"

	"github.com/notefold/notes-service/internal/app"
	"github.com/notefold/notes-service/internal/middleware"
	"github.com/notefold/notes-service/internal/routers/api_router"
	"github.com/notefold/notes-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/api/auth",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
	limiter.BucketRule{
		Key:          "/api",
		FillInterval: time.Second,
		Capacity:     100,
		Quantum:      100,
	},
)

// NewRouter builds the gin engine: cross-cutting concerns are composed
// as middleware around the core calls, never inside them.
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {
	cfg := appContainer.Config()

	r := gin.New()
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AccessLog())
	r.Use(middleware.RecoveryWithLogger(appContainer.Logger()))
	r.Use(middleware.LangWithTranslator(uni))
	r.Use(middleware.RateLimiter(methodLimiters))
	r.Use(middleware.ContextTimeout(time.Duration(cfg.Server.ContextTimeout) * time.Second))

	userHandler := api_router.NewUserHandler(appContainer)
	noteHandler := api_router.NewNoteHandler(appContainer)

	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", userHandler.Signup)
		auth.POST("/signin", userHandler.Signin)
	}

	api := r.Group("/api")
	api.Use(middleware.UserAuthToken(appContainer.AuthService))
	{
		api.POST("/notes", noteHandler.Create)
		api.GET("/notes", noteHandler.Get)
		api.GET("/notes/:id", noteHandler.Get)
		api.PUT("/notes/:id", noteHandler.Update)
		api.DELETE("/notes/:id", noteHandler.Delete)
		api.POST("/notes/:id/share", noteHandler.Share)
		api.GET("/search", noteHandler.Search)
	}

	return r
}
