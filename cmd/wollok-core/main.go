package main

import (
	"fmt"
	"os"

	"github.com/guillep/wollok-core/cmd/wollok-core/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
