package main

import (
	"os"

	"github.com/pharmafinder-client/cmd/pharmactl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
