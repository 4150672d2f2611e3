package main

import (
	"fmt"
	"os"

	"hywoma/internal/daemon"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(daemon.ExitStatus(err))
	}
}
