// Command header prints the fields of the first line of a file.
package main

import (
	"os"

	"github.com/rcarmo/go-header/pkg/applets/header"
	"github.com/rcarmo/go-header/pkg/core"
)

func main() {
	core.IgnoreSIGPIPE()
	stdio := core.DefaultStdio()
	os.Exit(header.Run(stdio, os.Args[1:]))
}
