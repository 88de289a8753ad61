// Package api is a thin HTTP client for the todolist backend. It mirrors
// the server's JSON contract, including the uniform error body.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avolkovs/todolist/internal/common"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type credentialsRequest struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

// RegisteredUser is the server's public projection of a created user.
type RegisteredUser struct {
	ID      int64  `json:"id"`
	Account string `json:"account"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// apiError is the server's uniform error body.
type apiError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// Register creates a new account and returns its projection.
func (c *Client) Register(ctx context.Context, account, password string) (*RegisteredUser, error) {
	user := &RegisteredUser{}
	if err := c.postJSON(ctx, "/user", credentialsRequest{Account: account, Password: password}, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates and returns the issued token.
func (c *Client) Login(ctx context.Context, account, password string) (string, error) {
	resp := &loginResponse{}
	if err := c.postJSON(ctx, "/auth/login", credentialsRequest{Account: account, Password: password}, resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Whoami asks the server which user the token belongs to.
func (c *Client) Whoami(ctx context.Context, token string) (*RegisteredUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	user := &RegisteredUser{}
	if err := c.do(req, user); err != nil {
		// a 401 on this endpoint always means the token was rejected
		if errors.Is(err, common.ErrorInvalidCredentials) {
			return nil, common.ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, dst any) error {

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, dst)
}

func (c *Client) do(req *http.Request, dst any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// decodeError converts the server's error body back into the shared
// sentinel errors so callers can branch with errors.Is.
func (c *Client) decodeError(resp *http.Response) error {
	apiErr := &apiError{}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return common.ErrorInvalidCredentials
	case http.StatusConflict:
		return common.ErrorAccountExists
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", common.ErrorValidation, apiErr.Message)
	default:
		return fmt.Errorf("server error: %s", apiErr.Message)
	}
}
