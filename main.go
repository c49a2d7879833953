package main

import (
	"os"

	"github.com/castkit/shownotes/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
