package main

import (
	"context"
	"os"

	"github.com/bingwall-go/bingwall/cmd"
	"github.com/charmbracelet/fang"
)

const version = "0.3.0"

func main() {
	root := cmd.NewRootCmd()

	// fang wraps cobra with styled help, completions, manpages and --version.
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
