// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all endpoints:
// the error envelope, the single error renderer that maps service error kinds
// to HTTP statuses, and helpers for success responses.
//
// Conventions:
//   - All error responses are an ErrorResponse with a stable `code`.
//   - renderError() is the only place a service error becomes a status code.
//   - Unclassified errors are logged with the request-scoped logger and
//     rendered with a generic message; store details never reach the client.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/biztime-api/internal/http/middleware"
	"github.com/tbourn/biztime-api/internal/services"
)

// ErrorBody carries the details of a failed request.
type ErrorBody struct {
	// HTTP status code, repeated for clients that only see the body
	Status int `json:"status" example:"404"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"company not found"`
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
}

// ErrorResponse is the standard error envelope returned by all endpoints.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// StatusResponse is returned by delete endpoints.
type StatusResponse struct {
	Status string `json:"status" example:"deleted"`
}

// internalMessage replaces the message of every unclassified failure.
const internalMessage = "internal server error"

// fail aborts the request with a structured error and logs server-side errors.
func fail(c *gin.Context, status int, code, msg string) {
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}
	abortJSON(c, status, code, msg)
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) should call Fail to return
// consistent error envelopes without directly depending on unexported helpers.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// renderError converts a service error into an HTTP error response.
func renderError(c *gin.Context, err error) {
	if errors.Is(err, errBodyTooLarge) {
		fail(c, http.StatusRequestEntityTooLarge, ErrCodeTooLarge, err.Error())
		return
	}
	switch services.KindOf(err) {
	case services.KindBadRequest:
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case services.KindNotFound:
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	default:
		_ = c.Error(err)
		lg := middleware.LoggerFrom(c)
		lg.Error().Err(err).Str("code", ErrCodeInternal).Msg("unhandled error")
		abortJSON(c, http.StatusInternalServerError, ErrCodeInternal, internalMessage)
	}
}

func abortJSON(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: ErrorBody{
		Status:    status,
		Code:      code,
		Message:   msg,
		RequestID: c.Writer.Header().Get("X-Request-ID"),
	}})
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// deleted writes the {status: "deleted"} acknowledgement.
func deleted(c *gin.Context) {
	ok(c, http.StatusOK, StatusResponse{Status: "deleted"})
}
