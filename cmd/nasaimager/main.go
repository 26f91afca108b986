package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/nasaimager/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cli.NewApp().Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "nasaimager: %v\n", err)
		return 1
	}
	return 0
}
