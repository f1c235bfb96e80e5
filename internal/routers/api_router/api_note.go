package api_router

import (
	"github.com/notefold/notes-service/internal/app"
	"github.com/notefold/notes-service/internal/dto"
	"github.com/notefold/notes-service/internal/middleware"
	pkgapp "github.com/notefold/notes-service/pkg/app"
	"github.com/notefold/notes-service/pkg/code"
	apperrors "github.com/notefold/notes-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteHandler handles the note endpoints.
type NoteHandler struct {
	*Handler
}

// NewNoteHandler creates a NoteHandler instance.
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{Handler: NewHandler(a)}
}

// Create handles note creation.
func (h *NoteHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.ToResponse(code.ErrorUnauthorizedAccess)
		return
	}

	params := &dto.NoteCreateRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Warn("NoteHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	noteDTO, err := h.App.NoteService.Create(ctx, identity, params)
	if err != nil {
		h.logError(ctx, "NoteHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SussNoteCreated.WithData(noteDTO))
}

// Get handles both fetch-one (with the id parameter) and fetch-all.
func (h *NoteHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.ToResponse(code.ErrorUnauthorizedAccess)
		return
	}

	ctx := c.Request.Context()

	notesDTO, err := h.App.NoteService.Get(ctx, identity, c.Param("id"))
	if err != nil {
		h.logError(ctx, "NoteHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SussNoteFetched.WithData(notesDTO))
}

// Update handles partial note updates.
func (h *NoteHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.ToResponse(code.ErrorUnauthorizedAccess)
		return
	}

	params := &dto.NoteUpdateRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Warn("NoteHandler.Update.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	if err := h.App.NoteService.Update(ctx, identity, c.Param("id"), params); err != nil {
		h.logError(ctx, "NoteHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SussNoteUpdated)
}

// Delete handles note soft-deletion.
func (h *NoteHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.ToResponse(code.ErrorUnauthorizedAccess)
		return
	}

	ctx := c.Request.Context()

	if err := h.App.NoteService.Delete(ctx, identity, c.Param("id")); err != nil {
		h.logError(ctx, "NoteHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SussNoteDeleted)
}

// Share handles granting read access to another user.
func (h *NoteHandler) Share(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.ToResponse(code.ErrorUnauthorizedAccess)
		return
	}

	params := &dto.NoteShareRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Warn("NoteHandler.Share.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	if err := h.App.NoteService.Share(ctx, identity, c.Param("id"), params); err != nil {
		h.logError(ctx, "NoteHandler.Share", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SussNoteShared)
}

// Search handles full-text search over the caller's own notes.
func (h *NoteHandler) Search(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.ToResponse(code.ErrorUnauthorizedAccess)
		return
	}

	params := &dto.SearchRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Warn("NoteHandler.Search.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	notesDTO, err := h.App.NoteService.Search(ctx, identity, params.Q)
	if err != nil {
		h.logError(ctx, "NoteHandler.Search", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SussNoteFetched.WithData(notesDTO))
}
