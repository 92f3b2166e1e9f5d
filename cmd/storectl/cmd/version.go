package cmd

import (
	"fmt"

	"github.com/go-drift/driftstore/cmd/storectl/internal/script"
)

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Show the storectl version and the script format it reads.",
		Usage: "storectl version",
		Run: func(args []string) error {
			printVersion()
			return nil
		},
	})
}

func printVersion() {
	fmt.Fprintf(stdout, "storectl version %s (built %s), script format %s\n", Version, BuildTime, script.SupportedMajor)
}
