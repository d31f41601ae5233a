package main

import (
	"os"

	"github.com/msto63/rbstr/cmd/rbstr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
