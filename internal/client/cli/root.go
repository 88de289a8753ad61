package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.account == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.account)
}

// Run starts the interactive loop. It returns when the user exits or stdin
// is closed.
func (a *App) Run(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to todolist CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "todo %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: whoami, token, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, exit")
			}
		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "whoami":
			a.Whoami(ctx)
		case "token":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, a.token)
			} else {
				fmt.Fprintln(a.out, "not logged in")
			}
		case "logout":
			a.Logout()
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}
