// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// This file centralizes symbolic error code constants that are mapped to HTTP
// responses (via fail() and renderError() in this package). These codes give
// clients a stable, machine-readable error taxonomy alongside the message.
// The strings are defined once in the middleware package, which emits the
// same envelope for requests it rejects.
//
// Conventions:
//   - Codes are lowercase, snake_case, and mirror HTTP status semantics.
//   - Every error response carries both the numeric status and one of these codes.
//
// Example response:
//
//	{
//	  "error": {
//	    "status": 404,
//	    "code": "not_found",
//	    "message": "company not found",
//	    "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6"
//	  }
//	}
package handlers

import "github.com/tbourn/biztime-api/internal/http/middleware"

const (
	ErrCodeBadRequest       = middleware.CodeBadRequest
	ErrCodeNotFound         = middleware.CodeNotFound
	ErrCodeMethodNotAllowed = middleware.CodeMethodNotAllowed
	ErrCodeTooLarge         = middleware.CodeTooLarge
	ErrCodeUnavailable      = middleware.CodeUnavailable
	ErrCodeInternal         = middleware.CodeInternal
)
