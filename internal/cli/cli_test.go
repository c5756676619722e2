package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunInitWritesSampleRuleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")

	err := Run(&Options{Init: path})
	require.NoError(t, err)

	bin, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, bin)
}

func TestRunScansInputToOutput(t *testing.T) {
	dir := t.TempDir()
	rulesPath := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(rulesPath, []byte("rules:\n  - name: number\n    pattern: \"[0-9]+\"\n"), 0644))

	inputPath := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("42"), 0644))

	outputPath := filepath.Join(dir, "output.txt")

	err := Run(&Options{RulesFile: rulesPath, InputFile: inputPath, OutputFile: outputPath})
	require.NoError(t, err)

	bin, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	require.Equal(t, "number\t42\n", string(bin))
}

func TestRunRejectsMissingRulesFile(t *testing.T) {
	err := Run(&Options{RulesFile: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}
