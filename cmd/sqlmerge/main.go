// Package main provides the sqlmerge command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlmerge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
