package main

import (
	"os"

	"ledger/cmd/ledger/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
