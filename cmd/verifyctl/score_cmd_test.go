package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ivanKorotkov735/cursor/internal/domain"
)

func TestRunScore(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "input.txt")
	outPath := filepath.Join(dir, "result.json")
	if err := os.WriteFile(inPath, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	if code := runScore([]string{"--in", inPath, "--out", outPath}); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	payload, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var result domain.VerificationResult
	if err := json.Unmarshal(payload, &result); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if result.Verdict != domain.VerdictBlock {
		t.Fatalf("unexpected verdict: %s", result.Verdict)
	}
	if result.ModelVersion != domain.ModelVersion {
		t.Fatalf("unexpected model version: %s", result.ModelVersion)
	}
}

func TestRunScore_MissingInput(t *testing.T) {
	if code := runScore(nil); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if code := runScore([]string{"--in", filepath.Join(t.TempDir(), "absent")}); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
}

func TestRunDispatch(t *testing.T) {
	if code := run([]string{"verifyctl"}); code != 1 {
		t.Fatalf("no args: expected 1, got %d", code)
	}
	if code := run([]string{"verifyctl", "unknown"}); code != 1 {
		t.Fatalf("unknown command: expected 1, got %d", code)
	}
}
