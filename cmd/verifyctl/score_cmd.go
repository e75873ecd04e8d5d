package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/ivanKorotkov735/cursor/internal/usecase"
)

// score runs the same engine as the /verify endpoint against a local
// file, without a server.
func runScore(args []string) int {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var inPath string
	var outPath string
	fs.StringVar(&inPath, "in", "", "path of the file to score")
	fs.StringVar(&outPath, "out", "", "write the result JSON here instead of stdout")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if inPath == "" {
		fmt.Fprintln(os.Stderr, "score: --in is required")
		return 2
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "score: read input: %v\n", err)
		return 1
	}
	engine := &usecase.ScoreEngineV0{}
	eval, err := engine.Evaluate(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "score: %v\n", err)
		return 1
	}
	payload, err := json.MarshalIndent(eval.Result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "score: encode result: %v\n", err)
		return 1
	}
	if err := writeOutput(outPath, payload); err != nil {
		fmt.Fprintf(os.Stderr, "score: write output: %v\n", err)
		return 1
	}
	return 0
}
