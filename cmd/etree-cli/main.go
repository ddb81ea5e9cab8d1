// Package main is the entry point for the etree-cli application.
// It builds the command tree, executes one invocation and exits with the
// invocation's status code.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	commands "github.com/jaladitrilokchand/ETSamCo-sub004/cmd/etree-cli/internal/commands"
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := commands.NewRootCommand()

	err := rootCmd.ExecuteContext(context.Background())
	if err == nil {
		return int(commands.ExitOK)
	}

	var se *commands.StatusError
	if !errors.As(err, &se) || !se.Silent() {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return int(commands.ExitCodeOf(err))
}
