// Package main is the entry point for the uvforge CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/uvforge/cli/internal/cmd"
	oerrors "github.com/uvforge/cli/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		// Skip printing if the command layer already reported the error
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) && exitErr.Printed {
			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
