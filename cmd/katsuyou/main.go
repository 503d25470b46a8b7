// Package main is the entry point for the katsuyou CLI.
package main

import (
	"os"

	"github.com/f3rmion/katsuyou/cmd/katsuyou/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
