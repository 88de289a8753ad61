package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/avolkovs/todolist/internal/common"
	"github.com/avolkovs/todolist/internal/server/config"
	"github.com/avolkovs/todolist/internal/server/users"
)

// Service implements the login use case: validate submitted credentials
// against the user store, then issue a signed token.
type Service struct {
	repo                  users.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo users.Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.JWTSecret),
		tokenValidityDuration: cfg.JWTExpires,
	}
}

// checkPassword compares the stored and submitted passwords in constant
// time. Stored passwords are plaintext, matching the system being
// reimplemented; only the comparison is hardened.
func (s *Service) checkPassword(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// validateUser looks up the account and verifies the password. An unknown
// account and a wrong password are both reported as
// common.ErrorInvalidCredentials so callers cannot probe which accounts
// exist.
func (s *Service) validateUser(ctx context.Context, account, password string) (*users.User, error) {
	user, err := s.repo.FindByAccount(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("%w: finding account: %v", common.ErrorInternal, err)
	}

	if !s.checkPassword(user.Password, password) {
		return nil, common.ErrorInvalidCredentials
	}

	return user, nil
}

// Login authenticates the account/password pair and returns a signed token
// encoding the account and the user id. The call is read-only and safe to
// repeat.
func (s *Service) Login(ctx context.Context, account, password string) (string, error) {
	user, err := s.validateUser(ctx, account, password)
	if err != nil {
		return "", err
	}

	token, err := GenerateToken(user.ID, user.Account, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("%w: signing token: %v", common.ErrorInternal, err)
	}

	return token, nil
}

// Authenticate verifies a bearer token and resolves it to the stored user's
// public projection. A token whose subject no longer matches a stored user
// is reported as invalid rather than not found.
func (s *Service) Authenticate(ctx context.Context, token string) (*users.Projection, error) {
	claims, err := ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	id, err := claims.UserID()
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("%w: finding user: %v", common.ErrorInternal, err)
	}

	return user.Project(), nil
}
