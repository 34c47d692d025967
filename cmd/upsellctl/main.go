package main

import (
	"os"
)

var version = "dev"

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(1)
	}
}
