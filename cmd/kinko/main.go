package main

import (
	"os"

	"github.com/kinko/pms/cmd/kinko/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
