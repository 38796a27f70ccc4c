// Package main is the entry point for the kabidiff CLI.
package main

import (
	"os"

	"github.com/kabitools/kabidiff/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
