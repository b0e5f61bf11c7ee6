// Package main is the entry point for the indexclean CLI.
package main

import (
	"os"

	"github.com/jmylchreest/indexclean/cmd/indexclean/commands"
	"github.com/jmylchreest/indexclean/internal/logger"
)

func main() {
	if err := commands.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
