package main

import (
	"os"

	"github.com/greenpath-labs/greenpath/internal/cli"
	"github.com/greenpath-labs/greenpath/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps errors to the process exit code.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		// Cobra already printed the error.
		return 1
	}
	return 0
}
