// Package main provides the entry point for the modkeeper CLI tool.
package main

import (
	"github.com/modkeeper/modkeeper/cmd/modkeeper/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
