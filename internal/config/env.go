package config

import (
	"errors"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	pferrors "github.com/alexisbeaulieu97/passforge/pkg/errors"
)

// Environment variables recognised by Load.
const (
	EnvLength    = "PASSFORGE_LENGTH"
	EnvSecure    = "PASSFORGE_SECURE"
	EnvLogLevel  = "PASSFORGE_LOG_LEVEL"
	EnvStatePath = "PASSFORGE_STATE_PATH"
)

// readEnv merges a dotenv file with the process environment. Process values
// win so an exported variable always overrides the file.
func readEnv(envFile string, environ []string) (map[string]string, error) {
	values := map[string]string{}

	if envFile != "" {
		fileValues, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, pferrors.NewParseError(envFile, 0, err)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}

	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || value == "" || !strings.HasPrefix(key, "PASSFORGE_") {
			continue
		}
		values[key] = value
	}

	return values, nil
}

func applyEnv(cfg *Settings, env map[string]string) error {
	if v, ok := env[EnvLength]; ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return pferrors.NewValidationError("length", "PASSFORGE_LENGTH must be an integer", err)
		}
		cfg.Length = n
	}
	if v, ok := env[EnvSecure]; ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return pferrors.NewValidationError("secure", "PASSFORGE_SECURE must be a boolean", err)
		}
		cfg.Secure = b
	}
	if v, ok := env[EnvLogLevel]; ok && v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := env[EnvStatePath]; ok && v != "" {
		cfg.StatePath = v
	}
	return nil
}
