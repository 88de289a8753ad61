package httpapi

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/avolkovs/todolist/internal/common"
	"github.com/avolkovs/todolist/internal/server/users"
)

// createUserRequest is the body of POST /user.
type createUserRequest struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

func (r *createUserRequest) Validate() error {
	if err := users.ValidateAccount(r.Account); err != nil {
		return err
	}
	return users.ValidatePassword(r.Password)
}

// loginRequest is the body of POST /auth/login. It carries the same shape
// and constraints as registration.
type loginRequest struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

func (r *loginRequest) Validate() error {
	if err := users.ValidateAccount(r.Account); err != nil {
		return err
	}
	return users.ValidatePassword(r.Password)
}

type loginResponse struct {
	Token string `json:"token"`
}

func decodeJSON(body io.Reader, dst any) error {
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed request body", common.ErrorValidation)
	}
	return nil
}
