// Command phasectl validates and previews phase tracker seed fixtures.
package main

import (
	"fmt"
	"os"

	"github.com/jsamuelsen11/phase-tracker/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
