package main

import (
	"os"

	"github.com/finansije-dev/finansije/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
