package main

import (
	"fmt"
	"os"

	"github.com/vela-commerce/vela-commerce/cmd/velactl/cli"
)

func main() {
	root := cli.NewRootCommand(os.Stdout, nil)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
