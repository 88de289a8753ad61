package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRecovery_WritesUniformBody(t *testing.T) {
	s, _ := newTestServer(t)

	h := s.withRecovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeErrorBody(t, rec)
	assert.Equal(t, http.StatusInternalServerError, body.StatusCode)
	assert.Equal(t, "internal error", body.Message, "panic value must not reach the client")
	assert.NotEmpty(t, body.Stack, "unexpected failures carry the stack")
}

func TestWithLogging_PassesThrough(t *testing.T) {
	s, _ := newTestServer(t)

	h := s.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
