// Package main is the entry point for the listing-finder server.
package main

import (
	"os"

	"github.com/mgoodall/listing-finder/cmd/listing-finder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
