package app

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// stripTrailingSpaceScript emulates a formatter: it prints the named file
// with trailing spaces and tabs removed from every line.
const stripTrailingSpaceScript = `sed 's/[[:space:]]*$//' "$1"` + "\n"

// failingScript emulates a formatter that cannot process its input.
const failingScript = "exit 3\n"

// writeScript drops an executable shell script into dir and returns its path.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures require a POSIX shell")
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// writeSourceTree lays out the canonical test fixture: a.cpp already
// conforms, b.h has trailing whitespace, c.txt is not a source file.
func writeSourceTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.cpp"), "int main() {\n  return 0;\n}\n")
	writeFile(t, filepath.Join(root, "b.h"), "#pragma once  \nint f();\n")
	writeFile(t, filepath.Join(root, "c.txt"), "just notes  \n")
	return root
}
