// Package main is the entry point for the nblint CLI.
package main

import (
	"errors"
	"os"

	"github.com/notebook-labs/nblint/internal/cli"
	"github.com/notebook-labs/nblint/internal/cli/commands"
)

// Exit codes: 0 when all documents pass, 1 when lint issues of error
// severity were found, 2 when analysis itself failed.
func main() {
	os.Exit(run())
}

func run() int {
	if err := cli.Execute(); err != nil {
		if errors.Is(err, commands.ErrIssuesFound) {
			return 1
		}
		return 2
	}
	return 0
}
