package httpapi

import (
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/avolkovs/todolist/internal/common"
)

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {

	req := &createUserRequest{}
	if err := decodeJSON(r.Body, req); err != nil {
		s.encodeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.encodeError(w, r, err)
		return
	}

	projection, err := s.users.Register(r.Context(), req.Account, req.Password)
	if err != nil {
		s.encodeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "account", projection.Account, "id", projection.ID)
	writeJSON(w, http.StatusCreated, projection)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {

	req := &loginRequest{}
	if err := decodeJSON(r.Body, req); err != nil {
		s.encodeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.encodeError(w, r, err)
		return
	}

	token, err := s.auth.Login(r.Context(), req.Account, req.Password)
	if err != nil {
		s.encodeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}

// handleWhoami returns the projection of the user named by the bearer token.
func (s *Server) handleWhoami(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {

	token, err := bearerToken(r)
	if err != nil {
		s.encodeError(w, r, err)
		return
	}

	projection, err := s.auth.Authenticate(r.Context(), token)
	if err != nil {
		s.encodeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, projection)
}

func bearerToken(r *http.Request) (string, error) {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return "", common.ErrInvalidToken
	}
	return strings.TrimPrefix(header, prefix), nil
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

// encodeError logs the failure and writes the uniform error body. Domain
// errors keep their message and get no stack; unexpected errors are reported
// with a generic message plus the stack of the serving goroutine.
func (s *Server) encodeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)

	if status == http.StatusInternalServerError {
		stack := string(debug.Stack())
		s.logger.Error(r.Context(), "request failed", "error", err.Error(), "stack", stack)
		writeError(w, status, "internal error", stack)
		return
	}

	s.logger.Warn(r.Context(), "request rejected", "error", err.Error(), "status", status)
	writeError(w, status, err.Error(), "")
}
