package main

import (
	"os"

	"github.com/axial-ml/axial/cmd/axial/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
