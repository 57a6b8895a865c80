// Package main provides the web CLI, which serves a static HTML file at the
// root path on the port given by the PORT environment variable.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
