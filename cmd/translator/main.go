package main

import (
	"os"

	"github.com/1psychoQAQ/my-translator/internal/cli"
)

func main() {
	flags := cli.NewFlags()
	rootCmd := cli.CreateRootCommand(flags)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
