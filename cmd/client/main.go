package main

import (
	"context"
	"log"

	"github.com/avolkovs/todolist/internal/client/cli"
	"github.com/avolkovs/todolist/internal/client/config"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	app := cli.NewApp(cfg)
	app.Run(context.Background())
}
