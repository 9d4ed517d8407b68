package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// captureOutput captures stdout while running fn.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

// assertContains checks that output contains every string in expected.
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertJSON checks that output is valid JSON.
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(output), &v); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// writeBootstrap writes a snapshot file under dir and a bootstrap YAML
// pointing a single root at it, returning the YAML's path. Used by
// subcommand tests that need preexisting data, since every regctl
// invocation otherwise starts from an empty tree.
func writeBootstrap(t *testing.T, dir, rootName, snapshot string) string {
	t.Helper()

	snapPath := filepath.Join(dir, "snapshot.reg")
	if err := os.WriteFile(snapPath, []byte(snapshot), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	cfgPath := filepath.Join(dir, "bootstrap.yaml")
	cfg := "roots:\n  " + rootName + ": " + snapPath + "\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write bootstrap config: %v", err)
	}
	return cfgPath
}

// resetFlags restores every persistent flag (verbose, quiet, json, config) to
// its zero value between subtests, since cobra flag vars are package-level.
// Subcommand-local flag vars are not reset here; tests set those themselves.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	configPath = ""
}
