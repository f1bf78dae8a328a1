package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	pferrors "github.com/alexisbeaulieu97/passforge/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseSettings reads and validates a settings file on top of the defaults.
// Keys absent from the file keep their default value; a missing file yields
// the defaults.
func ParseSettings(path string) (*Settings, error) {
	cfg, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	if err := ValidateSettings(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeFile overlays the file at path on the defaults without validating,
// so environment overrides get a chance to replace bad values.
func decodeFile(path string) (*Settings, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, pferrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, pferrors.NewParseError(path, extractLine(err), err)
	}

	return &cfg, nil
}

// Load resolves settings from the file at path, then the optional dotenv
// file, then the process environment, and validates the result.
func Load(path, envFile string) (*Settings, error) {
	cfg, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	env, err := readEnv(envFile, os.Environ())
	if err != nil {
		return nil, err
	}
	if err := applyEnv(cfg, env); err != nil {
		return nil, err
	}

	if err := ValidateSettings(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
