package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := Execute(); err != nil {
		prefix := color.New(color.FgRed, color.Bold).Sprint("cutlass:")
		fmt.Fprintf(os.Stderr, "%s %v\n", prefix, err)
		os.Exit(1)
	}
}
