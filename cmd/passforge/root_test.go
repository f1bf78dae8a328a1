package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/passforge/internal/password"
)

func TestRootCommandPrintsPasswordWhenNotATerminal(t *testing.T) {
	calls := stubWidget(t)

	stdout, _, err := runRoot(t, isolatedArgs(t)...)
	require.NoError(t, err)

	assert.Zero(t, *calls)
	assert.Len(t, strings.TrimSpace(stdout), password.DefaultLength)
}

func TestRootCommandHonoursEnvLength(t *testing.T) {
	stubWidget(t)
	t.Setenv("PASSFORGE_LENGTH", "6")

	stdout, _, err := runRoot(t, isolatedArgs(t)...)
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(stdout), 6)
}

func TestRootCommandVerboseLogsSettings(t *testing.T) {
	stubWidget(t)

	_, stderr, err := runRoot(t, append(isolatedArgs(t), "--verbose")...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "settings loaded")
}

func TestIsTerminalFalseForBuffers(t *testing.T) {
	assert.False(t, isTerminal(&strings.Builder{}))
}
