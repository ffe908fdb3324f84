package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

const version = "0.1.0"

func main() {
	a := &app{}
	root := newRootCmd(a)

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		if a.logger != nil {
			a.logger.Error("Run failed", "error", err)
		}
		os.Exit(a.exitCode())
	}
}
