package main

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolatedArgs points settings, dotenv and state at a temp dir so tests never
// read the developer's home directory.
func isolatedArgs(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()
	return []string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--env-file", filepath.Join(dir, ".env"),
		"--state", filepath.Join(dir, "state.json"),
	}
}

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func stubWidget(t *testing.T) *int {
	t.Helper()
	calls := 0
	original := widgetRunner
	widgetRunner = func(*AppContext, io.Writer) error {
		calls++
		return nil
	}
	t.Cleanup(func() { widgetRunner = original })
	require.NotNil(t, widgetRunner)
	return &calls
}
