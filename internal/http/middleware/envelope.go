package middleware

import "github.com/gin-gonic/gin"

// Error codes carried in the "code" field of every error envelope. The
// handlers package re-exports them for its own responses.
const (
	CodeBadRequest       = "bad_request"
	CodeNotFound         = "not_found"
	CodeMethodNotAllowed = "method_not_allowed"
	CodeTooLarge         = "payload_too_large"
	CodeRateLimited      = "too_many_requests"
	CodeUnavailable      = "unavailable"
	CodeInternal         = "internal_error"
)

// abortError stops the chain with the API error envelope. The shape matches
// handlers.ErrorResponse, which cannot be imported from here.
func abortError(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{
			"status":     status,
			"code":       code,
			"message":    msg,
			"request_id": c.Writer.Header().Get(requestIDHeader),
		},
	})
}
