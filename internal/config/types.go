package config

import (
	"github.com/alexisbeaulieu97/passforge/internal/password"
)

// Settings holds the defaults the widget and CLI start from.
type Settings struct {
	Length  int     `yaml:"length" validate:"min=4,max=32"`
	Classes Classes `yaml:"classes"`
	// Secure selects crypto/rand instead of the default math/rand source.
	Secure   bool   `yaml:"secure"`
	LogLevel string `yaml:"log_level" validate:"omitempty,log_level"`
	// StatePath overrides where the theme flag is persisted.
	StatePath string `yaml:"state_path,omitempty" validate:"omitempty,state_path"`
}

// Classes mirrors password.Selection with YAML names.
type Classes struct {
	Uppercase bool `yaml:"uppercase"`
	Lowercase bool `yaml:"lowercase"`
	Numbers   bool `yaml:"numbers"`
	Symbols   bool `yaml:"symbols"`
}

// Default returns twelve characters with every class enabled.
func Default() Settings {
	return Settings{
		Length: password.DefaultLength,
		Classes: Classes{
			Uppercase: true,
			Lowercase: true,
			Numbers:   true,
			Symbols:   true,
		},
		LogLevel: "info",
	}
}

// Selection converts the configured classes.
func (s Settings) Selection() password.Selection {
	return password.Selection{
		Uppercase: s.Classes.Uppercase,
		Lowercase: s.Classes.Lowercase,
		Numbers:   s.Classes.Numbers,
		Symbols:   s.Classes.Symbols,
	}
}

// Source returns the random source implied by Secure.
func (s Settings) Source() password.Source {
	if s.Secure {
		return password.CryptoSource()
	}
	return password.DefaultSource()
}
