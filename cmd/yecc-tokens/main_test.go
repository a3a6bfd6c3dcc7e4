package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "in.c")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunPlainOutput(t *testing.T) {
	path := writeTemp(t, "int main(void) { return 0; }\n")
	var stdout, stderr bytes.Buffer
	err := run([]string{path}, &stdout, &stderr)
	require.NoError(t, err)
	out := stdout.String()
	require.Contains(t, out, "KW_INT")
	require.Contains(t, out, "IDENTIFIER")
	require.Contains(t, out, "KW_RETURN")
	require.Contains(t, out, "EOF")
}

func TestRunJSONOutput(t *testing.T) {
	path := writeTemp(t, "int x;\n")
	var stdout, stderr bytes.Buffer
	err := run([]string{"--json", path}, &stdout, &stderr)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.NotEmpty(t, lines)
	require.Contains(t, lines[0], `"kind":"KW_INT"`)
}

func TestRunReportsLexErrors(t *testing.T) {
	path := writeTemp(t, "int x = `;\n")
	var stdout, stderr bytes.Buffer
	err := run([]string{path}, &stdout, &stderr)
	require.Error(t, err)
	require.Contains(t, stderr.String(), "yecc:")
}

func TestRunRejectsBadStd(t *testing.T) {
	path := writeTemp(t, "int x;\n")
	var stdout, stderr bytes.Buffer
	err := run([]string{"--std=c42", path}, &stdout, &stderr)
	require.Error(t, err)
}

func TestRunRejectsBadWcharBits(t *testing.T) {
	path := writeTemp(t, "int x;\n")
	var stdout, stderr bytes.Buffer
	err := run([]string{"--wchar-bits=24", path}, &stdout, &stderr)
	require.Error(t, err)
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"/nonexistent/does-not-exist.c"}, &stdout, &stderr)
	require.Error(t, err)
}
