package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveThenLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := writeBootstrap(t, dir, "HKEY_LOCAL_MACHINE", testSnapshot)
	// saving_version defaults to 1 (legacy REGEDIT4 export), which LoadRegistry
	// can't read back; force v2 so the reload below succeeds.
	f, err := os.OpenFile(cfg, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open bootstrap config: %v", err)
	}
	if _, err := f.WriteString("saving_version: 2\n"); err != nil {
		t.Fatalf("append saving_version: %v", err)
	}
	f.Close()

	resetFlags()
	configPath = cfg
	saveStdout = false

	savedFile := filepath.Join(dir, "out.reg")
	output, err := captureOutput(t, func() error {
		return runSave([]string{"HKEY_LOCAL_MACHINE", savedFile})
	})
	if err != nil {
		t.Fatalf("runSave() error = %v\noutput: %s", err, output)
	}

	data, err := os.ReadFile(savedFile)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("saved file is empty")
	}

	reloadDir := filepath.Join(dir, "reload")
	if err := os.MkdirAll(reloadDir, 0o755); err != nil {
		t.Fatalf("mkdir reload dir: %v", err)
	}

	resetFlags()
	loadCfg := writeBootstrap(t, reloadDir, "HKEY_CURRENT_USER", string(data))
	configPath = loadCfg

	out, err := captureOutput(t, func() error {
		return runGet([]string{"HKEY_CURRENT_USER", `Software\MyApp`, "Name"})
	})
	if err != nil {
		t.Fatalf("runGet() after reload error = %v\noutput: %s", err, out)
	}
	assertContains(t, out, []string{"hello"})
}

func TestLevelsCommand(t *testing.T) {
	resetFlags()
	jsonOut = true

	output, err := captureOutput(t, func() error {
		return runLevels([]string{"2", "3"})
	})
	if err != nil {
		t.Fatalf("runLevels() error = %v\noutput: %s", err, output)
	}
	assertJSON(t, output)
	assertContains(t, output, []string{"\"current_level\": 2", "\"saving_level\": 3"})
}
