package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pferrors "github.com/alexisbeaulieu97/passforge/pkg/errors"
)

func TestReadEnvProcessOverridesDotenv(t *testing.T) {
	t.Parallel()

	envFile := writeFile(t, ".env", "PASSFORGE_LENGTH=16\nPASSFORGE_SECURE=true\nUNRELATED=1\n")

	values, err := readEnv(envFile, []string{"PASSFORGE_LENGTH=24", "HOME=/root"})
	require.NoError(t, err)
	assert.Equal(t, "24", values[EnvLength])
	assert.Equal(t, "true", values[EnvSecure])
	assert.NotContains(t, values, "HOME")
}

func TestReadEnvMissingDotenvIsIgnored(t *testing.T) {
	t.Parallel()

	values, err := readEnv(filepath.Join(t.TempDir(), ".env"), nil)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, applyEnv(&cfg, map[string]string{
		EnvLength:    "8",
		EnvSecure:    "1",
		EnvLogLevel:  "DEBUG",
		EnvStatePath: "/tmp/state.json",
	}))

	assert.Equal(t, 8, cfg.Length)
	assert.True(t, cfg.Secure)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/state.json", cfg.StatePath)
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	t.Parallel()

	cfg := Default()
	err := applyEnv(&cfg, map[string]string{EnvLength: "twelve"})
	var validationErr *pferrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "length", validationErr.Field)

	err = applyEnv(&cfg, map[string]string{EnvSecure: "maybe"})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "secure", validationErr.Field)
}

func TestLoadAppliesDotenvAndValidates(t *testing.T) {
	cfgPath := writeFile(t, "config.yaml", "length: 10\n")
	envFile := writeFile(t, ".env", "PASSFORGE_LENGTH=40\n")
	t.Setenv(EnvLength, "")

	_, err := Load(cfgPath, envFile)
	var validationErr *pferrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "length", validationErr.Field)
}

func TestLoadUsesFileWhenNoOverrides(t *testing.T) {
	cfgPath := writeFile(t, "config.yaml", "length: 10\n")
	t.Setenv(EnvLength, "")
	t.Setenv(EnvSecure, "")

	cfg, err := Load(cfgPath, "")
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Length)
}

func TestLoadEnvReplacesInvalidFileValue(t *testing.T) {
	cfgPath := writeFile(t, "config.yaml", "length: 40\n")
	t.Setenv(EnvLength, "10")

	cfg, err := Load(cfgPath, "")
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Length)
}

func TestLoadStillRejectsInvalidFileValueWithoutOverride(t *testing.T) {
	cfgPath := writeFile(t, "config.yaml", "length: 40\n")
	t.Setenv(EnvLength, "")

	_, err := Load(cfgPath, "")
	var validationErr *pferrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "length", validationErr.Field)
}
