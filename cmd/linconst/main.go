package main

import (
	"os"

	"github.com/rollingthunder/linconst/cmd/linconst/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
