package errors

import (
	"errors"
	"net/http"
	"time"

	"github.com/notefold/notes-service/internal/middleware"
	"github.com/notefold/notes-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// AppError is the unified application error envelope sent to clients.
type AppError struct {
	// Code business error code
	Code int `json:"code"`
	// Message error message
	Message string `json:"message"`
	// Details optional error details
	Details []string `json:"details,omitempty"`
	// TraceID request trace id
	TraceID string `json:"traceId,omitempty"`
	// Cause original error, never serialized
	Cause error `json:"-"`
	// Timestamp when the error occurred
	Timestamp time.Time `json:"timestamp"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError builds an AppError from a registered Code.
func NewAppError(c *code.Code, cause error) *AppError {
	return &AppError{
		Code:      c.Code(),
		Message:   c.Msg(),
		Details:   c.Details(),
		Cause:     cause,
		Timestamp: time.Now(),
	}
}

// WithTraceID sets the trace id and returns the error for chaining.
func (e *AppError) WithTraceID(traceID string) *AppError {
	e.TraceID = traceID
	return e
}

// ErrorResponse resolves err to an AppError and writes it with the HTTP
// status carried by the underlying code. Unknown errors collapse to an
// internal error so storage faults never leak detail to the caller.
func ErrorResponse(c *gin.Context, err error) {
	traceID := middleware.GetTraceIDFromGin(c)

	var codeErr *code.Code
	if errors.As(err, &codeErr) {
		c.JSON(codeErr.StatusCode(), NewAppError(codeErr, nil).WithTraceID(traceID))
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, appErr.WithTraceID(traceID))
		return
	}

	c.JSON(http.StatusInternalServerError, NewAppError(code.ErrorServerInternal, err).WithTraceID(traceID))
}
