package main

import (
	"fmt"
	"os"

	"github.com/amirbrooks/taskline/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "taskline: unexpected error:", r)
		}
	}()
	return cli.Run(os.Args[1:])
}
