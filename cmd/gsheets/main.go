package main

import (
	"os"

	"github.com/The-Luminous-Group/google-sheets-api-integration/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
