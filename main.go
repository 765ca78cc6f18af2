package main

import (
	"os"

	"github.com/reshuffle/admin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
