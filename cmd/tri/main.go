package main

import (
	"os"

	"github.com/msto63/triangle/cmd/tri/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
