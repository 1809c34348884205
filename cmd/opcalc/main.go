// Package main provides the opcalc command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/opcalc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
