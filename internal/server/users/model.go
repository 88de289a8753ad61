// Package users holds the user aggregate: the model, the storage contract
// and its implementations, and the registration service.
package users

import "time"

// User is a registered account. ID is assigned by the store on first save
// and immutable afterwards. Account is the unique login identity (an
// email-shaped string; the format is checked by validation, not by storage).
//
// Password is stored exactly as submitted. The upstream system this backend
// reimplements keeps passwords in plaintext; hashing is deliberately out of
// scope here, so the field must never appear in any API output.
type User struct {
	ID        int64
	Account   string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New returns an unsaved User record for the given credentials.
func New(account, password string) *User {
	return &User{Account: account, Password: password}
}

// Projection is the subset of User fields safe to return to a caller.
type Projection struct {
	ID      int64  `json:"id"`
	Account string `json:"account"`
}

// Project returns the public-safe view of u.
func (u *User) Project() *Projection {
	return &Projection{ID: u.ID, Account: u.Account}
}
