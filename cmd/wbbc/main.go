package main

import (
	"os"

	"github.com/eolymp/go-wbb/cmd/wbbc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
