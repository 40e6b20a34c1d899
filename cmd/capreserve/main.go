// Package main is the entry point for the capreserve CLI.
//
// capreserve creates EC2 capacity reservations with retry logic for
// transient capacity shortages. It can run against the live AWS API or in a
// deterministic simulation mode that replays scripted provider responses.
//
// Commands: create, cancel, init, version, completion.
//
// For detailed usage information, run:
//
//	capreserve --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/capreserve/cmd/capreserve/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
