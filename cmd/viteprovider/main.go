// Package main is the entry point for the viteprovider CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/3-lines-studio/viteprovider/cmd/viteprovider/commands"
)

func main() {
	if err := run(); err != nil {
		// zerr prints the metadata and stack trace with %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return commands.New().Execute(ctx)
}
