package main

import (
	"os"

	"github.com/thiha-ko/linetrans/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
