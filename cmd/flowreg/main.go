// Package main is the entry point for the flowreg MCP server.
//
// The binary is normally spawned by an MCP host and serves the
// parameter_suggest prompt over stdio:
//
//	flowreg serve
//
// Startup sequence:
//
// 1. Load a .env file from the working directory, if present
// 2. Initialize logging (stderr, or flowreg.log in debug mode)
// 3. Load configuration from disk, environment and flags
// 4. Run the selected command
// 5. Close the logger on exit
//
// The render and templates commands exercise the same prompt assembly and
// template loading from a terminal.
package main

import (
	"os"
)

func main() {
	a := &app{}
	if err := a.execute(newRootCmd(a)); err != nil {
		os.Exit(1)
	}
}
