// file: main.go
// version: 1.0.0
// guid: 2f3a4b5c-6d7e-8f9a-0b1c-2d3e4f5a6b7c

package main

import (
	"fmt"
	"os"

	"github.com/jdfalk/audiobook-curator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
