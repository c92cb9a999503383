package main

import (
	"os"

	"github.com/lehoon/ambry/cli"
)

func main() {
	if err := cli.Run(); err != nil {
		os.Exit(1)
	}
}
