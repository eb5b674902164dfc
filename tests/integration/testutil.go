// Package integration provides CLI integration tests for pantry.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// pantryBin is the path to the built pantry binary.
	pantryBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	// Start from the current working directory
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetPantryBin sets the path to the pantry binary (called from TestMain).
func SetPantryBin(path string) {
	pantryBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config directory
// and inventory file.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	File    string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build pantry: %v", buildErr)
	}
	if pantryBin == "" {
		t.Fatal("pantry binary not built (pantryBin is empty)")
	}

	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	file := filepath.Join(tempDir, "inventory.json")

	// Create config directory and write config.yaml
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "threshold: 5\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
		File:    file,
	}
}

// CmdResult holds the result of a pantry command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunPantry executes the pantry CLI with the given arguments.
// Returns stdout, stderr, and exit code.
func (e *TestEnv) RunPantry(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--file", e.File}, args...)
	cmd := exec.Command(pantryBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run pantry: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunPantry executes the pantry CLI and fails the test if it returns non-zero.
func (e *TestEnv) MustRunPantry(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunPantry(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("pantry %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Receipt represents a journal entry receipt for JSON parsing.
type Receipt struct {
	EntryID string `json:"entry_id"`
	Time    string `json:"time"`
	Op      string `json:"op"`
	Item    string `json:"item"`
	Qty     int64  `json:"qty"`
	Total   int64  `json:"total"`
}

// ReadJSONFile reads and parses a JSON file.
func ReadJSONFile[T any](t *testing.T, path string) T {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return ParseJSON[T](t, string(data))
}

// ReadInventoryFile reads the persisted inventory as an item to quantity map.
func ReadInventoryFile(t *testing.T, path string) map[string]int64 {
	t.Helper()
	return ReadJSONFile[map[string]int64](t, path)
}
