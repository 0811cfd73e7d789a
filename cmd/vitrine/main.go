package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps command errors onto process exit codes.
func exitCode(err error) int {
	var cmdErr *commandError
	if errors.As(err, &cmdErr) && cmdErr.code != 0 {
		return cmdErr.code
	}
	return 1
}
