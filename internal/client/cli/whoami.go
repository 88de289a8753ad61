package cli

import (
	"context"
	"fmt"
)

// Whoami asks the server to resolve the stored token back to its account.
func (a *App) Whoami(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "not logged in")
		return
	}

	user, err := a.client.Whoami(ctx, a.token)
	if err != nil {
		fmt.Fprintf(a.out, "whoami failed: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "%s (id %d)\n", user.Account, user.ID)
}
