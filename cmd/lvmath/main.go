package main

import (
	"os"

	"github.com/katalvlaran/lvmath/cmd/lvmath/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
