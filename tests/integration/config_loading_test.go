// Integration tests for configuration loading and path resolution precedence.
// Exercises the pantry binary via os/exec with various flag, env, and config
// file combinations.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cleanEnv returns os.Environ() with all LARDER_* and XDG_* variables removed,
// providing a clean baseline for subprocess isolation.
func cleanEnv() []string {
	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "LARDER_") || strings.HasPrefix(e, "XDG_") {
			continue
		}
		env = append(env, e)
	}
	return env
}

// runPantryWith executes the pantry binary with explicit control over flags,
// environment, and working directory. Unlike RunPantry (which always injects
// --config-dir and --file), this helper passes args unchanged so callers can
// test the full precedence chain. The subprocess environment is cleaned of
// LARDER_* and XDG_* variables before adding the provided env overrides.
func runPantryWith(t *testing.T, env []string, workDir string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()
	if buildErr != nil {
		t.Fatalf("failed to build pantry: %v", buildErr)
	}
	cmd := exec.Command(pantryBin, args...)
	cmd.Env = append(cleanEnv(), env...)
	if workDir != "" {
		cmd.Dir = workDir
	}
	var outBuf, errBuf strings.Builder
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err := cmd.Run()
	stdout = outBuf.String()
	stderr = errBuf.String()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("run pantry: %v", err)
		}
	}
	return stdout, stderr, exitCode
}

// writeConfigYAML writes a config.yaml file in the given directory.
func writeConfigYAML(t *testing.T, configDir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "config.yaml"),
		[]byte(content), 0o644))
}

func TestConfigLoading_DefaultConfigCreatedOnFirstRun(t *testing.T) {
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "config")
	file := filepath.Join(tmpDir, "inventory.json")

	_, stderr, code := runPantryWith(t, nil, "",
		"--config-dir", configDir, "--file", file, "version")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	data, err := os.ReadFile(filepath.Join(configDir, "config.yaml"))
	require.NoError(t, err, "config.yaml should be created on first run")
	assert.Contains(t, string(data), "threshold: 5")
	assert.Contains(t, string(data), "Pantry CLI configuration")
}

func TestConfigLoading_FileFromConfigYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "config")
	file := filepath.Join(tmpDir, "pantry-items.json")
	writeConfigYAML(t, configDir, "file: "+file+"\n")

	_, stderr, code := runPantryWith(t, nil, "",
		"--config-dir", configDir, "add", "apple", "3")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	items := ReadInventoryFile(t, file)
	assert.Equal(t, int64(3), items["apple"])
}

func TestConfigLoading_FlagOverridesConfigYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "config")
	configured := filepath.Join(tmpDir, "from-config.json")
	flagged := filepath.Join(tmpDir, "from-flag.json")
	writeConfigYAML(t, configDir, "file: "+configured+"\n")

	_, stderr, code := runPantryWith(t, nil, "",
		"--config-dir", configDir, "--file", flagged, "add", "apple", "3")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	assert.FileExists(t, flagged)
	assert.NoFileExists(t, configured)
}

func TestConfigLoading_EnvFileFallback(t *testing.T) {
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "config")
	envFile := filepath.Join(tmpDir, "from-env.json")

	_, stderr, code := runPantryWith(t, []string{"LARDER_FILE=" + envFile}, "",
		"--config-dir", configDir, "add", "apple", "2")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	items := ReadInventoryFile(t, envFile)
	assert.Equal(t, int64(2), items["apple"])
}

func TestConfigLoading_DefaultFileIsCWD(t *testing.T) {
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "config")
	workDir := filepath.Join(tmpDir, "work")
	require.NoError(t, os.MkdirAll(workDir, 0o755))

	_, stderr, code := runPantryWith(t, nil, workDir,
		"--config-dir", configDir, "add", "apple", "1")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	assert.FileExists(t, filepath.Join(workDir, "inventory.json"))
}

func TestConfigLoading_EnvConfigDir(t *testing.T) {
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "env-config")
	file := filepath.Join(tmpDir, "inventory.json")

	_, stderr, code := runPantryWith(t, []string{"LARDER_CONFIG_DIR=" + configDir}, "",
		"--file", file, "version")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	assert.FileExists(t, filepath.Join(configDir, "config.yaml"))
}

func TestConfigLoading_ThresholdFromConfigYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "config")
	file := filepath.Join(tmpDir, "inventory.json")
	writeConfigYAML(t, configDir, "threshold: 2\n")
	require.NoError(t, os.WriteFile(file,
		[]byte(`{"apple": 3, "banana": 1}`), 0o644))

	stdout, stderr, code := runPantryWith(t, nil, "",
		"--config-dir", configDir, "--file", file, "low")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	assert.Equal(t, "banana\n", stdout)
}

func TestConfigLoading_ThresholdFlagOverridesConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "config")
	file := filepath.Join(tmpDir, "inventory.json")
	writeConfigYAML(t, configDir, "threshold: 2\n")
	require.NoError(t, os.WriteFile(file,
		[]byte(`{"apple": 3, "banana": 1}`), 0o644))

	stdout, stderr, code := runPantryWith(t, nil, "",
		"--config-dir", configDir, "--file", file, "low", "--threshold", "10")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	assert.Equal(t, "apple\nbanana\n", stdout)
}
