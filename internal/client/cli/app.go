// Package cli implements the interactive todolist client: a small REPL for
// registering an account and logging in against the HTTP backend.
package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/avolkovs/todolist/internal/client/api"
	"github.com/avolkovs/todolist/internal/client/config"
)

type App struct {
	config  *config.Config
	client  *api.Client
	reader  *bufio.Reader
	out     io.Writer
	account string
	token   string
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		client: api.NewClient(c.ServerAddress, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}
