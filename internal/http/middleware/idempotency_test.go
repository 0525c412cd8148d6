package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// memStore is an in-memory lookup/save pair keyed by scope+key.
type memStore struct {
	mu      sync.Mutex
	entries map[string]StoredResponse
	saves   int
	saveErr error
	lookErr error
}

func newMemStore() *memStore { return &memStore{entries: map[string]StoredResponse{}} }

func (m *memStore) lookup(_ context.Context, scope, key string, _ time.Time) (*StoredResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lookErr != nil {
		return nil, m.lookErr
	}
	if r, ok := m.entries[scope+"|"+key]; ok {
		return &r, nil
	}
	return nil, nil
}

func (m *memStore) save(_ context.Context, scope, key string, status int, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.entries[scope+"|"+key] = StoredResponse{Status: status, Body: append([]byte(nil), body...)}
	return nil
}

func newIdemRouter(store *memStore, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Idempotency(IdempotencyOptions{}, store.lookup, store.save))
	r.POST("/companies", func(c *gin.Context) {
		*calls++
		if k, ok := GetIdempotencyKey(c); !ok || k == "" {
			c.JSON(http.StatusCreated, gin.H{"n": *calls, "key": false})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"n": *calls})
	})
	r.POST("/invoices", func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusInternalServerError, gin.H{"error": "nope"})
	})
	r.GET("/companies", func(c *gin.Context) {
		*calls++
		c.Status(http.StatusOK)
	})
	return r
}

func post(r http.Handler, path, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`))
	if key != "" {
		req.Header.Set(HeaderIdempotencyKey, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHelpers_GetIdempotencyKey_IsReplay(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	if k, ok := GetIdempotencyKey(c); k != "" || ok {
		t.Fatalf("expected empty key when not set")
	}
	if IsReplay(c) {
		t.Fatalf("expected IsReplay=false by default")
	}

	c.Set(ctxKeyIdemKey, 123)
	if _, ok := GetIdempotencyKey(c); ok {
		t.Fatalf("expected GetIdempotencyKey to be absent for non-string value")
	}
	c.Set(ctxKeyIdemReplay, true)
	if !IsReplay(c) {
		t.Fatalf("expected IsReplay=true")
	}
	c.Set(ctxKeyIdemReplay, "yes")
	if IsReplay(c) {
		t.Fatalf("expected IsReplay=false for non-bool")
	}
}

func TestIdempotency_NoHeader_PassesThroughWithoutSaving(t *testing.T) {
	store := newMemStore()
	calls := 0
	r := newIdemRouter(store, &calls)

	post(r, "/companies", "")
	post(r, "/companies", "")
	if calls != 2 || store.saves != 0 {
		t.Fatalf("calls=%d saves=%d", calls, store.saves)
	}
}

func TestIdempotency_InvalidKey400(t *testing.T) {
	store := newMemStore()
	calls := 0
	r := newIdemRouter(store, &calls)

	for _, key := range []string{"has space", "bad/slash", strings.Repeat("a", 201)} {
		w := post(r, "/companies", key)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("key %q -> %d", key, w.Code)
		}
		var body map[string]map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("json: %v", err)
		}
		if body["error"]["code"] != "bad_request" {
			t.Fatalf("unexpected envelope: %s", w.Body.String())
		}
	}
	if calls != 0 {
		t.Fatalf("handler must not run for invalid keys")
	}
}

func TestIdempotency_CustomPattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Idempotency(IdempotencyOptions{MaxLen: 4, Pattern: regexp.MustCompile(`^[0-9]+$`)}, nil, nil))
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusCreated) })

	if w := post(r, "/x", "1234"); w.Code != http.StatusCreated {
		t.Fatalf("valid -> %d", w.Code)
	}
	if w := post(r, "/x", "12345"); w.Code != http.StatusBadRequest {
		t.Fatalf("too long -> %d", w.Code)
	}
	if w := post(r, "/x", "abc"); w.Code != http.StatusBadRequest {
		t.Fatalf("pattern -> %d", w.Code)
	}
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	store := newMemStore()
	calls := 0
	r := newIdemRouter(store, &calls)

	first := post(r, "/companies", "k-1")
	if first.Code != http.StatusCreated || first.Header().Get(HeaderIdempotentReplay) != "" {
		t.Fatalf("first -> %d replay=%q", first.Code, first.Header().Get(HeaderIdempotentReplay))
	}
	second := post(r, "/companies", "k-1")
	if second.Code != http.StatusCreated {
		t.Fatalf("replay -> %d", second.Code)
	}
	if second.Header().Get(HeaderIdempotentReplay) != "true" {
		t.Fatalf("expected replay header")
	}
	if second.Body.String() != first.Body.String() {
		t.Fatalf("replay body %s != %s", second.Body.String(), first.Body.String())
	}
	if calls != 1 {
		t.Fatalf("handler must run once, ran %d", calls)
	}
	if _, ok := store.entries["POST /companies|k-1"]; !ok {
		t.Fatalf("expected scope to be method + route, got %v", store.entries)
	}
}

func TestIdempotency_ScopeSeparatesRoutes(t *testing.T) {
	store := newMemStore()
	store.entries["POST /companies|shared"] = StoredResponse{Status: 201, Body: []byte(`{"stored":true}`)}
	calls := 0
	r := newIdemRouter(store, &calls)

	w := post(r, "/invoices", "shared")
	if w.Header().Get(HeaderIdempotentReplay) != "" || calls != 1 {
		t.Fatalf("key must not replay across routes")
	}
}

func TestIdempotency_FailedResponsesAreNotStored(t *testing.T) {
	store := newMemStore()
	calls := 0
	r := newIdemRouter(store, &calls)

	post(r, "/invoices", "k")
	post(r, "/invoices", "k")
	if calls != 2 || store.saves != 0 {
		t.Fatalf("non-2xx must not be stored: calls=%d saves=%d", calls, store.saves)
	}
}

func TestIdempotency_LookupAndSaveErrorsDoNotBlock(t *testing.T) {
	store := newMemStore()
	store.lookErr = errors.New("db down")
	store.saveErr = errors.New("db down")
	calls := 0
	r := newIdemRouter(store, &calls)

	if w := post(r, "/companies", "k"); w.Code != http.StatusCreated {
		t.Fatalf("expected live response despite store errors, got %d", w.Code)
	}
	if calls != 1 || store.saves != 1 {
		t.Fatalf("calls=%d saves=%d", calls, store.saves)
	}
}

func TestIdempotency_IgnoresNonPOST(t *testing.T) {
	store := newMemStore()
	calls := 0
	r := newIdemRouter(store, &calls)

	req := httptest.NewRequest(http.MethodGet, "/companies", nil)
	req.Header.Set(HeaderIdempotencyKey, "bad key with spaces")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || calls != 1 {
		t.Fatalf("GET should ignore the header, got %d", w.Code)
	}
}

func TestIdempotency_ReplayBypassesRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newMemStore()
	store.entries["POST /companies|k"] = StoredResponse{Status: 201, Body: []byte(`{"ok":true}`)}

	rl := NewRateLimiter(0, 1, func(*gin.Context) string { return "same" })
	r := gin.New()
	r.Use(Idempotency(IdempotencyOptions{}, store.lookup, store.save), rl.Handler())
	r.POST("/companies", func(c *gin.Context) { c.Status(http.StatusCreated) })

	// Exhaust the single token.
	post(r, "/companies", "")
	if w := post(r, "/companies", ""); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected limiter to trip, got %d", w.Code)
	}
	if w := post(r, "/companies", "k"); w.Code != http.StatusCreated || w.Header().Get(HeaderIdempotentReplay) != "true" {
		t.Fatalf("replay should bypass limiter, got %d", w.Code)
	}
}
