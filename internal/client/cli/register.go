package cli

import (
	"context"
	"fmt"

	"github.com/avolkovs/todolist/internal/common"
)

func (a *App) Register(ctx context.Context) {

	account, err := GetSimpleText(a.reader, "Enter account (email)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	user, err := a.client.Register(ctx, account, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Registration unsuccessful: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Registered %s (id=%d)\n", user.Account, user.ID)
}
