package main

import (
	"os"

	"github.com/huguesb/preparator/internal/cli"
	"github.com/huguesb/preparator/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		splog := tui.NewSplog()
		splog.Error("preparator: %v", err)
		splog.Close()
		os.Exit(1)
	}
}
