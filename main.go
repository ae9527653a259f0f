package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"iconlist/cmd"
	"iconlist/config"
)

func main() {
	cnf, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = cmd.Execute(ctx, cnf)
	stop()
	os.Exit(cmd.ExitCode(err))
}
