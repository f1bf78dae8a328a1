// Package generator implements the interactive password generator widget.
package generator

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/passforge/internal/clipboard"
	"github.com/alexisbeaulieu97/passforge/internal/logger"
	"github.com/alexisbeaulieu97/passforge/internal/password"
	"github.com/alexisbeaulieu97/passforge/internal/store"
	"github.com/alexisbeaulieu97/passforge/internal/ui/components"
)

// Options wires the widget's collaborators. Nil fields and a zero Length get
// defaults: every class, twelve characters, an in-memory store and an OSC 52
// clipboard on stdout, where the widget renders.
type Options struct {
	Length    int
	Selection *password.Selection
	Source    password.Source
	Store     store.Store
	Clipboard clipboard.Writer
	Logger    *logger.Logger
}

// Model is the bubbletea model for the widget.
type Model struct {
	state State

	source    password.Source
	store     store.Store
	clipboard clipboard.Writer
	log       *logger.Logger

	keys     KeyMap
	help     help.Model
	toastSeq int

	width  int
	height int
}

// NewModel builds the widget. The theme is read from the store.
func NewModel(opts Options) Model {
	st := DefaultState()
	if opts.Length != 0 {
		st = st.WithLength(opts.Length)
	}
	if opts.Selection != nil {
		st.Selection = *opts.Selection
	}

	if opts.Source == nil {
		opts.Source = password.DefaultSource()
	}
	if opts.Store == nil {
		opts.Store = store.NewMemoryStore()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.NewOSC52(os.Stdout, clipboard.DetectMultiplexer(nil))
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	st.Mode = components.ModeFromDark(store.LoadDark(opts.Store))

	return Model{
		state:     st,
		source:    opts.Source,
		store:     opts.Store,
		clipboard: opts.Clipboard,
		log:       opts.Logger.WithField("component", "widget"),
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// State returns a copy of the current widget state.
func (m Model) State() State {
	return m.state
}
