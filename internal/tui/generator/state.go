package generator

import (
	"github.com/alexisbeaulieu97/passforge/internal/password"
	"github.com/alexisbeaulieu97/passforge/internal/ui/components"
)

// Toast is the transient notification currently on screen.
type Toast struct {
	Message string
	Error   bool
}

// State is everything the widget renders. It is owned by the Model and only
// changed from Update.
type State struct {
	Mode      components.Mode
	Length    int
	Selection password.Selection
	Password  string
	Toast     *Toast
}

// DefaultState is the light theme, twelve characters and every class on.
func DefaultState() State {
	return State{
		Mode:      components.ModeLight,
		Length:    password.DefaultLength,
		Selection: password.AllClasses(),
	}
}

// WithLength returns a copy with length clamped to the slider bounds.
func (s State) WithLength(length int) State {
	s.Length = clampLength(length)
	return s
}

func clampLength(length int) int {
	if length < password.MinLength {
		return password.MinLength
	}
	if length > password.MaxLength {
		return password.MaxLength
	}
	return length
}
