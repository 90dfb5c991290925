package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"
	"github.com/treepack/treepack/internal/cmd"
)

func main() {
	// Interrupt cancels the context; in-flight pack/unpack operations poll
	// it per entry and unwind without writing a partial archive.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := fang.Execute(ctx, cmd.NewRootCmd()); err != nil {
		os.Exit(1)
	}
}
