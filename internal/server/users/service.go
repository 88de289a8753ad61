package users

import (
	"context"
	"fmt"
)

// Service implements the registration use case on top of a Repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register validates the submitted credentials, creates the user and returns
// its public projection. The password never appears in the result.
//
// Input shape is normally enforced by the HTTP layer; it is re-checked here
// so the service stays safe when called directly. A second registration for
// the same account fails with common.ErrorAccountExists, enforced by the
// store's unique constraint (concurrent attempts are serialized there, the
// loser fails rather than overwriting).
func (s *Service) Register(ctx context.Context, account, password string) (*Projection, error) {

	if err := ValidateAccount(account); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	user, err := s.repo.Save(ctx, New(account, password))
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user.Project(), nil
}
