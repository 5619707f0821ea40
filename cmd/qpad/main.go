// Package main implements the qpa daemon (qpad).
// qpad serves the duration codec and the table transformation over HTTP.
package main

import (
	"os"

	"github.com/concave-dev/qpa/cmd/qpad/commands"
)

// Main entry point
func main() {
	commands.SetupCommands()
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
