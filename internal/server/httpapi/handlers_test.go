package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkovs/todolist/internal/logging"
	"github.com/avolkovs/todolist/internal/server/auth"
	"github.com/avolkovs/todolist/internal/server/config"
	"github.com/avolkovs/todolist/internal/server/users"
)

func newTestServer(t *testing.T) (*Server, *users.InMemoryRepository) {
	t.Helper()

	repo := users.NewInMemoryRepository()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpires: time.Hour}

	us := users.NewService(repo)
	as := auth.NewService(repo, cfg)

	return NewServer(":0", logging.NopLogger{}, us, as), repo
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateUser_Success(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	rec := doJSON(t, h, http.MethodPost, "/user",
		map[string]string{"account": "a@b.com", "password": "secret1"})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		ID      int64  `json:"id"`
		Account string `json:"account"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "a@b.com", resp.Account)

	// the password must not leak through the boundary in any form
	assert.NotContains(t, strings.ToLower(rec.Body.String()), "password")
	assert.NotContains(t, rec.Body.String(), "secret1")
}

func TestCreateUser_Validation(t *testing.T) {
	s, repo := newTestServer(t)
	h := s.Handler()

	tests := []struct {
		name string
		body map[string]string
	}{
		{"bad email", map[string]string{"account": "not-an-email", "password": "secret1"}},
		{"short password", map[string]string{"account": "a@b.com", "password": "12345"}},
		{"empty body", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodPost, "/user", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			body := decodeErrorBody(t, rec)
			assert.Equal(t, http.StatusBadRequest, body.StatusCode)
			assert.NotEmpty(t, body.Message)
			assert.Empty(t, body.Stack)
		})
	}

	assert.Equal(t, 0, repo.Count())
}

func TestCreateUser_MalformedJSON(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUser_Duplicate(t *testing.T) {
	s, repo := newTestServer(t)
	h := s.Handler()

	rec := doJSON(t, h, http.MethodPost, "/user",
		map[string]string{"account": "a@b.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/user",
		map[string]string{"account": "a@b.com", "password": "other12"})
	require.Equal(t, http.StatusConflict, rec.Code)

	body := decodeErrorBody(t, rec)
	assert.Equal(t, http.StatusConflict, body.StatusCode)
	assert.Empty(t, body.Stack)

	assert.Equal(t, 1, repo.Count(), "store must retain exactly one row")
}

func TestLogin_Success(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	doJSON(t, h, http.MethodPost, "/user",
		map[string]string{"account": "a@b.com", "password": "secret1"})

	rec := doJSON(t, h, http.MethodPost, "/auth/login",
		map[string]string{"account": "a@b.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	claims, err := auth.ParseToken(resp.Token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Account)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	doJSON(t, h, http.MethodPost, "/user",
		map[string]string{"account": "a@b.com", "password": "secret1"})

	wrongPw := doJSON(t, h, http.MethodPost, "/auth/login",
		map[string]string{"account": "a@b.com", "password": "wrong123"})
	unknown := doJSON(t, h, http.MethodPost, "/auth/login",
		map[string]string{"account": "nobody@b.com", "password": "wrong123"})

	require.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	require.Equal(t, http.StatusUnauthorized, unknown.Code)

	// no distinguishing signal between "no such account" and "wrong password"
	assert.Equal(t, wrongPw.Body.String(), unknown.Body.String())
}

func TestWhoami_Success(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	doJSON(t, h, http.MethodPost, "/user",
		map[string]string{"account": "a@b.com", "password": "secret1"})

	rec := doJSON(t, h, http.MethodPost, "/auth/login",
		map[string]string{"account": "a@b.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"account":"a@b.com"}`, rec.Body.String())
	assert.NotContains(t, strings.ToLower(rec.Body.String()), "password")
}

func TestWhoami_Unauthorized(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	expired, err := auth.GenerateToken(1, "a@b.com", []byte("test-secret"), -time.Minute)
	require.NoError(t, err)
	foreign, err := auth.GenerateToken(1, "a@b.com", []byte("other-secret"), time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-token"},
		{"wrong key", "Bearer " + foreign},
		{"expired", "Bearer " + expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/user", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)

			body := decodeErrorBody(t, rec)
			assert.Equal(t, http.StatusUnauthorized, body.StatusCode)
			assert.Empty(t, body.Stack)
		})
	}
}

func TestPing(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK"}`, rec.Body.String())
}

// the full journey from the API contract
func TestRegisterLoginScenario(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	rec := doJSON(t, h, http.MethodPost, "/user",
		map[string]string{"account": "a@b.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"account":"a@b.com"}`, rec.Body.String())

	rec = doJSON(t, h, http.MethodPost, "/auth/login",
		map[string]string{"account": "a@b.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	rec = doJSON(t, h, http.MethodPost, "/auth/login",
		map[string]string{"account": "a@b.com", "password": "wrong12"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/user",
		map[string]string{"account": "a@b.com", "password": "other12"})
	require.Equal(t, http.StatusConflict, rec.Code)
}
