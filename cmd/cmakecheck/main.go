// Package main is the entry point for the cmakecheck CLI.
package main

import (
	"os"

	"github.com/buildcheck/cmakecheck/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
