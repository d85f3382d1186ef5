package main

import (
	"os"

	"github.com/zenmachine/zentop/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
