// Package api_router implements the HTTP handlers. Handlers are a flat
// set of functions over the app container: bind, call the service,
// translate the outcome. No business logic lives here.
package api_router

import (
	"context"

	"github.com/notefold/notes-service/internal/app"
	"github.com/notefold/notes-service/internal/middleware"
	"github.com/notefold/notes-service/pkg/logger"

	"go.uber.org/zap"
)

// Handler is the shared base for API handlers.
type Handler struct {
	App *app.App
}

func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// logError records a service failure with its trace context.
func (h *Handler) logError(ctx context.Context, op string, err error) {
	traceID, _ := ctx.Value(middleware.TraceIDKey).(string)
	h.App.Logger().Warn(op,
		zap.String(logger.FieldTraceID, traceID),
		zap.Error(err),
	)
}
