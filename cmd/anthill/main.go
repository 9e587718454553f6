// Command anthill runs the colony simulation: a deterministic tick engine
// with snapshot persistence, an offline catch-up path, and a live viewer.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the CLI. Subcommands silence cobra's own reporting, so the
// returned error is printed here; nothing may fail without a trace on stderr.
func run(args []string, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "anthill:", err)
		return 1
	}
	return 0
}
