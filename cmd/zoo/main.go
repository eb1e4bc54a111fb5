package main

import (
	"os"

	"github.com/bnema/zoo-api/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
