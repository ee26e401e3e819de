package main

import (
	"os"

	"github.com/abhisek/fretwise/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
