// Package main is the entry point for the lsf CLI client.
package main

import (
	"github.com/mgoodall/listing-finder/cmd/lsf/cmd"
)

func main() {
	cmd.Execute()
}
