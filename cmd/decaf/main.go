// Command decaf is a thin driver around the Decaf parser. It scans and
// parses Decaf source files and prints the resulting syntax tree, token
// stream, or diagnostics.
package main

import "os"

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
