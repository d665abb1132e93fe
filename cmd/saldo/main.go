package main

import (
	"os"

	"github.com/saldo-dev/saldo/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
