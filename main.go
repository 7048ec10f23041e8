package main

import (
	"os"

	cmd "github.com/gridforge/gridforge/cmd/gridforge"
	"github.com/gridforge/gridforge/pkg/logger"
)

func main() {
	exitCode := cmd.Execute()
	logger.Sync()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
