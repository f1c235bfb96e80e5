package api_router

import (
	"github.com/notefold/notes-service/internal/app"
	"github.com/notefold/notes-service/internal/dto"
	pkgapp "github.com/notefold/notes-service/pkg/app"
	"github.com/notefold/notes-service/pkg/code"
	apperrors "github.com/notefold/notes-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler handles the auth endpoints.
type UserHandler struct {
	*Handler
}

// NewUserHandler creates a UserHandler instance.
func NewUserHandler(a *app.App) *UserHandler {
	return &UserHandler{Handler: NewHandler(a)}
}

// Signup handles user registration.
func (h *UserHandler) Signup(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.SignupRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Warn("UserHandler.Signup.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	userDTO, err := h.App.UserService.Register(ctx, params)
	if err != nil {
		h.logError(ctx, "UserHandler.Signup", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SussUserCreated.WithData(userDTO))
}

// Signin handles user login.
func (h *UserHandler) Signin(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.SigninRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Warn("UserHandler.Signin.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	tokenDTO, err := h.App.UserService.Login(ctx, params)
	if err != nil {
		h.logError(ctx, "UserHandler.Signin", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SussUserLoggedIn.WithData(tokenDTO))
}
