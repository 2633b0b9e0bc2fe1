package main

import (
	"os"

	"github.com/BHARTIYAYASH/manasveda/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
