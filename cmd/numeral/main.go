package main

import (
	"os"

	"github.com/govalues/numeral/cmd/numeral/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
