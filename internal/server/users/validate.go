package users

import (
	"fmt"
	"regexp"

	"github.com/avolkovs/todolist/internal/common"
)

// MinPasswordLength is the shortest password accepted at registration and
// login.
const MinPasswordLength = 6

var accountRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateAccount checks that account is an email-shaped string.
func ValidateAccount(account string) error {
	if !accountRe.MatchString(account) {
		return fmt.Errorf("%w: account must be an email address", common.ErrorValidation)
	}
	return nil
}

// ValidatePassword checks the minimal password length.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password is too short", common.ErrorValidation)
	}
	return nil
}
