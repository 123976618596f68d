package main

import (
	"os"

	"github.com/spacesedan/sentiment-analyzer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
