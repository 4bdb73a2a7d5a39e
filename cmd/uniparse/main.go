// Command uniparse reads and edits build manifests from the command line.
package main

import (
	"os"

	"github.com/pixelacme/uniparse/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
