package main

import (
	"os"

	"github.com/dmitrymomot/batchcode/cli"
)

func main() {
	os.Exit(cli.Execute())
}
