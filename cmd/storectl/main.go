// Command storectl replays action scripts against a store.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/driftstore/cmd/storectl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
