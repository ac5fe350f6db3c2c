// SPDX-License-Identifier: MIT

// Command linsolve solves a system of linear equations read from a file.
//
// Usage:
//
//	linsolve [flags] FILE
//	linsolve version
package main

import (
	"os"

	"github.com/katalvlaran/linsolve/cmd/linsolve/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
