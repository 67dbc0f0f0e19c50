// Package main is the entry point for the dealer-appraisal server.
package main

import (
	"os"

	"github.com/donaldgifford/dealer-appraisal/cmd/dealer-appraisal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
