// Package main is the entry point for the dap CLI client.
package main

import (
	"github.com/donaldgifford/dealer-appraisal/cmd/dap/cmd"
)

func main() {
	cmd.Execute()
}
