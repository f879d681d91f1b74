// Package main is the entry point for the rigc CLI.
package main

import (
	"fmt"
	"os"

	"github.com/rigforge/cli/internal/cmd"
	"github.com/rigforge/cli/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(errors.ExitCodeFromError(err))
	}
}
