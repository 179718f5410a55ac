package main

import (
	"os"

	"github.com/funvibe/dynvec/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
