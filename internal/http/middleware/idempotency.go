// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements idempotent replay for POST endpoints. A client that
// sends an Idempotency-Key header gets at-most-once creation: the first
// successful response is stored, and any retry with the same key on the same
// route inside the TTL window is answered from storage without re-executing
// the handler.
//
// Persistence is decoupled via two narrow function types so the middleware
// stays free of database concerns:
//   - IdempotencyLookup fetches a stored response for (scope, key).
//   - IdempotencySave persists a fresh 2xx response.
//
// Scope is "<METHOD> <route template>", e.g. "POST /companies".
package middleware

import (
	"bytes"
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
)

// HeaderIdempotencyKey is the canonical request header that clients use to
// convey an idempotency key for unsafe operations (e.g., POST).
const HeaderIdempotencyKey = "Idempotency-Key"

// HeaderIdempotentReplay is set to "true" on responses served from storage.
const HeaderIdempotentReplay = "Idempotent-Replay"

// Context keys used internally to stash idempotency state.
const (
	ctxKeyIdemKey    = "idem.key"
	ctxKeyIdemReplay = "idem.replay" // bool: true when a stored replay was served
	ctxKeyRateBypass = "rate.bypass" // bool: true to skip rate limiting
)

// GetIdempotencyKey returns the validated idempotency key stored in the Gin
// context by Idempotency. The second return value indicates presence.
func GetIdempotencyKey(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxKeyIdemKey)
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

// IsReplay reports whether the response for this request was served from a
// previously stored result.
func IsReplay(c *gin.Context) bool {
	v, ok := c.Get(ctxKeyIdemReplay)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// StoredResponse is a previously completed response eligible for replay.
type StoredResponse struct {
	Status int
	Body   []byte
}

// IdempotencyLookup returns the stored response for (scope, key) that is still
// valid at now, or nil when none exists. Errors are treated as a miss.
type IdempotencyLookup func(ctx context.Context, scope, key string, now time.Time) (*StoredResponse, error)

// IdempotencySave persists a completed response for (scope, key). TTL handling
// belongs to the implementation.
type IdempotencySave func(ctx context.Context, scope, key string, status int, body []byte) error

// IdempotencyOptions configures header validation.
type IdempotencyOptions struct {
	// MaxLen caps the accepted key length. Values <= 0 default to 200.
	MaxLen int
	// Pattern restricts allowed characters. If nil, a conservative RFC7230-like
	// token pattern is used: ^[A-Za-z0-9._~\-:]+$
	Pattern *regexp.Regexp
}

// Idempotency validates the Idempotency-Key header on POST requests, replays a
// stored response when one exists, and otherwise records the handler's 2xx
// response after it completes.
//
// Behavior:
//   - Non-POST requests and requests without the header pass through.
//   - An invalid header is rejected with 400 bad_request.
//   - A replay is written verbatim with Idempotent-Replay: true and marks the
//     request for rate-limit bypass.
//   - Save failures are logged and never affect the live response.
//
// Register it after gzip so the recorded body is uncompressed, and before the
// rate limiter so replays are not throttled.
func Idempotency(opts IdempotencyOptions, lookup IdempotencyLookup, save IdempotencySave) gin.HandlerFunc {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = 200
	}
	pat := opts.Pattern
	if pat == nil {
		pat = regexp.MustCompile(`^[A-Za-z0-9._~\-:]+$`)
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxLen || !pat.MatchString(key) {
			abortError(c, http.StatusBadRequest, CodeBadRequest, "invalid Idempotency-Key")
			return
		}
		c.Set(ctxKeyIdemKey, key)

		scope := c.Request.Method + " " + routeOf(c)
		ctx := c.Request.Context()

		if lookup != nil {
			if prev, err := lookup(ctx, scope, key, time.Now().UTC()); err == nil && prev != nil {
				c.Set(ctxKeyIdemReplay, true)
				c.Set(ctxKeyRateBypass, true)
				c.Header(HeaderIdempotentReplay, "true")
				c.Data(prev.Status, "application/json; charset=utf-8", prev.Body)
				c.Abort()
				return
			}
		}

		cw := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Next()

		status := cw.Status()
		if save == nil || status < 200 || status > 299 {
			return
		}
		if err := save(context.WithoutCancel(ctx), scope, key, status, cw.buf.Bytes()); err != nil {
			lg := LoggerFrom(c)
			lg.Warn().Err(err).Str("scope", scope).Msg("idempotency save failed")
		}
	}
}

// routeOf returns the matched route template, or the raw path when no route matched.
func routeOf(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return c.Request.URL.Path
}

// captureWriter tees the response body into a buffer.
type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
