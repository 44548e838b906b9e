package main

import (
	"os"

	"github.com/msto63/numcore/cmd/numcore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
