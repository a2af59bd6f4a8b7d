package main

import (
	"fmt"
	"os"

	"github.com/sp80808/Highway-Code-Master/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
