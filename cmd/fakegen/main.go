package main

import (
	"errors"
	"fmt"
	"os"

	"fakegen/cmd/fakegen/commands"
	"fakegen/internal/export"
	"fakegen/internal/generate"
)

// Exit codes reported to the shell. The core packages return typed errors and
// never exit on their own.
const (
	exitValidation = 1
	exitStorage    = 2
	exitUnexpected = 3
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var storageErr *export.StorageError
	switch {
	case errors.Is(err, generate.ErrInvalidCount):
		return exitValidation
	case errors.As(err, &storageErr):
		return exitStorage
	default:
		return exitUnexpected
	}
}
