// SPDX-License-Identifier: MIT

// Command strided loads, slices and multiplies dense matrices.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/strided/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
