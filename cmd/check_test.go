// Copyright © 2026 The escope authors

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estools-go/escope/lint"
)

func TestCheckCommand_DefaultFlags(t *testing.T) {
	assert.Equal(t, "check [flags] [files...]", checkCmd.Use)

	// All expected flags should exist
	for _, name := range []string{"format", "checks", "list", "exclude", "watch", "jobs"} {
		assert.NotNil(t, checkCmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestFormatMode(t *testing.T) {
	t.Cleanup(func() { viper.Set("format", "") })

	viper.Set("format", "")
	format, err := formatMode()
	require.NoError(t, err)
	assert.Equal(t, "pretty", format)

	for _, want := range []string{"pretty", "text", "json"} {
		viper.Set("format", want)
		format, err := formatMode()
		require.NoError(t, err)
		assert.Equal(t, want, format)
	}

	viper.Set("format", "yaml")
	_, err = formatMode()
	assert.Error(t, err)
}

func TestRenderChecks(t *testing.T) {
	out := renderChecks()
	for _, name := range lint.AnalyzerNames() {
		assert.Contains(t, out, name+"\n")
	}
	// Documentation is indented under each name.
	assert.Contains(t, out, "\n  ")
}

func TestCheckFiles_InputOrder(t *testing.T) {
	l, err := lint.New(nil)
	require.NoError(t, err)

	dir := t.TempDir()
	// Two scripts that each read one undeclared name.
	first := writeDocument(t, dir, "first.json", "firstName")
	second := writeDocument(t, dir, "second.json", "secondName")

	diags, err := checkFiles(l, []string{first, second})
	require.NoError(t, err)
	require.Len(t, diags, 2)
	assert.Contains(t, diags[0].Message, "firstName")
	assert.Contains(t, diags[1].Message, "secondName")
	assert.Equal(t, first, diags[0].Pos.File)
	assert.Equal(t, second, diags[1].Pos.File)
}

func TestCheckFiles_ReadError(t *testing.T) {
	l, err := lint.New(nil)
	require.NoError(t, err)

	_, err = checkFiles(l, []string{"does-not-exist.json"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.json")
}

// writeDocument writes an ESTree document whose program reads one
// undeclared name, and returns its path.
func writeDocument(t *testing.T, dir, name, identifier string) string {
	t.Helper()
	document := fmt.Sprintf(`{
		"type": "Program",
		"sourceType": "script",
		"body": [
			{
				"type": "ExpressionStatement",
				"expression": {"type": "Identifier", "name": %q}
			}
		]
	}`, identifier)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(document), 0o600))
	return path
}
