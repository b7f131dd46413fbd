package main

import (
	"os"

	"github.com/sgarch/archfolio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
