package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/tbourn/biztime-api/internal/services"
)

// errBodyTooLarge is rendered as 413 by renderError.
var errBodyTooLarge = errors.New("request body too large")

// bindBody decodes a required JSON body into dst. An empty or whitespace-only
// body and the literal null count as absent; anything that is not a JSON
// object is invalid. Both are client errors. A well-formed object whose
// fields do not fit dst (e.g. "amt":"abc") is returned unclassified.
func bindBody(c *gin.Context, dst any) error {
	raw, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errBodyTooLarge
		}
		return services.ErrInvalidBody
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return services.ErrBodyRequired
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return services.ErrInvalidBody
	}
	if err := binding.JSON.BindBody(raw, dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
