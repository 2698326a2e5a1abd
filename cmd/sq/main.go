// Package main is the entry point for the sq CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/sq/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
