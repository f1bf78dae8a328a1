package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/passforge/internal/config"
	"github.com/alexisbeaulieu97/passforge/internal/logger"
	"github.com/alexisbeaulieu97/passforge/internal/store"
)

// AppContext bundles the settings and services created before a command runs.
type AppContext struct {
	Settings *config.Settings
	Logger   *logger.Logger

	statePath string
}

func (a *AppContext) init(cmd *cobra.Command, flags *rootFlags) error {
	configPath := flags.configPath
	if configPath == "" {
		path, err := defaultConfigPath()
		if err != nil {
			return fmt.Errorf("resolve settings path: %w", err)
		}
		configPath = path
	}

	settings, err := config.Load(configPath, flags.envFile)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Level:         settings.LogLevel,
		Verbose:       flags.verbose,
		HumanReadable: true,
		Component:     "cli",
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	statePath := flags.statePath
	if statePath == "" {
		statePath = settings.StatePath
	}
	if statePath == "" {
		path, err := defaultStatePath()
		if err != nil {
			return fmt.Errorf("resolve state path: %w", err)
		}
		statePath = path
	}

	a.Settings = settings
	a.Logger = log.WithField("command", cmd.Name())
	a.statePath = statePath

	a.Logger.WithFields(map[string]any{
		"config": configPath,
		"state":  statePath,
		"length": settings.Length,
		"secure": settings.Secure,
	}).Debug("settings loaded")

	return nil
}

// OpenStore opens the file-backed store holding the theme flag.
func (a *AppContext) OpenStore() (*store.FileStore, error) {
	s, err := store.NewFileStore(a.statePath)
	if err != nil {
		return nil, fmt.Errorf("open state %s: %w", a.statePath, err)
	}
	return s, nil
}
