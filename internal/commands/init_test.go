package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "tms-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "tms")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/tms")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runTMS(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	_, err := runTMS(t, "init", dir, "--name", "Transnorda UAB")
	require.NoError(t, err)

	expectedDirs := []string{
		"statements",
		filepath.Join("statements", "processed"),
		"invoices",
		"sessions",
		"logs",
	}
	for _, d := range expectedDirs {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, err := runTMS(t, "init", dir, "--name", "Transnorda UAB", "--reg-code", "123456789")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "tms.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Transnorda UAB")
	assert.Contains(t, string(data), "swedbank")
	assert.Contains(t, string(data), "windows-1257")
}

func TestInit_GitRepo(t *testing.T) {
	dir := t.TempDir()
	out, err := runTMS(t, "init", dir, "--name", "Transnorda UAB")
	require.NoError(t, err, out)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	assert.NoError(t, err, "init should create a git repository")
}

func TestInit_RequiresName(t *testing.T) {
	dir := t.TempDir()
	out, err := runTMS(t, "init", dir)
	require.Error(t, err)
	assert.Contains(t, out, "name")
}
