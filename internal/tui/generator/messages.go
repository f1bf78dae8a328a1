package generator

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/passforge/internal/clipboard"
	"github.com/alexisbeaulieu97/passforge/internal/store"
)

// toastDuration is how long a toast stays on screen.
const toastDuration = 2 * time.Second

// CopiedMsg reports the outcome of a clipboard write.
type CopiedMsg struct {
	Err error
}

// ThemeSavedMsg reports the outcome of persisting the theme flag.
type ThemeSavedMsg struct {
	Dark bool
	Err  error
}

// clearToastMsg hides the toast with the matching sequence number.
type clearToastMsg struct {
	seq int
}

func copyCmd(w clipboard.Writer, text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Err: w.Write(text)}
	}
}

func saveThemeCmd(s store.Store, dark bool) tea.Cmd {
	return func() tea.Msg {
		return ThemeSavedMsg{Dark: dark, Err: store.SaveDark(s, dark)}
	}
}

func clearToastCmd(seq int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return clearToastMsg{seq: seq}
	})
}
