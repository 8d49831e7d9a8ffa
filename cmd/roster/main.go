// Command roster manages an employee roster stored in SQLite.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/roster/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	// ExitErrors were already reported by the command.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
