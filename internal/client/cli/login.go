package cli

import (
	"context"
	"fmt"

	"github.com/avolkovs/todolist/internal/common"
)

func (a *App) Login(ctx context.Context) {

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

	token, err := a.client.Login(ctx, account, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %v\n", err)
		return
	}

	a.account = account
	a.token = token
	fmt.Fprintln(a.out, "Login successful")
}

func (a *App) Logout() {
	a.account = ""
	a.token = ""
	fmt.Fprintln(a.out, "Logged out")
}
