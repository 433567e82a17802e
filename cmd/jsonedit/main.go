package main

import (
	"fmt"
	"os"

	"jsonedit/internal/errors"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	rootCmd := NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errAborted) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(exitCode(err))
	}
}
