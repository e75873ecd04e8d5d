package main

import (
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if len(args) < 2 {
		usage(args)
		return 1
	}
	switch args[1] {
	case "score":
		return runScore(args[2:])
	}
	usage(args)
	return 1
}

func usage(args []string) {
	name := "verifyctl"
	if len(args) > 0 && args[0] != "" {
		name = filepath.Base(args[0])
	}
	fmt.Fprintf(os.Stderr, "usage:\n")
	fmt.Fprintf(os.Stderr, "  %s score --in <file> [--out <file>]\n", name)
}
