// Command rxctl is a thin demonstration CLI over the rx core: it loads
// rx.Config, builds a small pipeline from flags, and runs it to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/CrisisTextLine/rx/cmd/rxctl/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
