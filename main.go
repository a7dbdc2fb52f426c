package main

import (
	"os"

	"github.com/foodverse/foodverse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
