// ABOUTME: Main entry point for the bearpage command line tool
// ABOUTME: Enhances static HTML pages with species cards and search highlights

package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
