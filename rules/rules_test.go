package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := []byte("rules:\n  - name: number\n    pattern: \"[0-9]+\"\n  - name: id\n    pattern: \"[a-z]+\"\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []Rule{
		{Name: "number", Pattern: "[0-9]+"},
		{Name: "id", Pattern: "[a-z]+"},
	}, loaded)
}

func TestLoadRejectsEmptyName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := []byte("rules:\n  - name: \"\"\n    pattern: \"[0-9]+\"\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsEmptyPattern(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := []byte("rules:\n  - name: number\n    pattern: \"\"\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestGenerateSampleRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.yaml")
	require.NoError(t, GenerateSample(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.NotEmpty(t, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
