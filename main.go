package main

import (
	"os"

	"github.com/bitrise-io/bitrise-plugins-ai-testgen/cmd"
	"github.com/bitrise-io/bitrise-plugins-ai-testgen/logger"
)

func main() {
	err := cmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
