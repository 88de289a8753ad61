package users

import (
	"context"
)

// Repository is the persistence contract for the user aggregate.
//
// Save persists u: a record without an ID is inserted (the store assigns ID
// and timestamps, and enforces account uniqueness, failing with
// common.ErrorAccountExists); a record with an ID is updated and its
// UpdatedAt bumped. Lookups return common.ErrorNotFound when no row matches.
type Repository interface {
	Save(ctx context.Context, user *User) (*User, error)
	FindByAccount(ctx context.Context, account string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
}
