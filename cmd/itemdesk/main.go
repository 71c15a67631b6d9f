package main

import (
	"context"
	"os"

	"github.com/idilsaglam/itemdesk/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Execute(context.Background(), version, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
