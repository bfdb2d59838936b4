package main

import (
	"os"

	"github.com/zicku/belimbing-ledger/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
