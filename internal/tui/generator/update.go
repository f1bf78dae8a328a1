package generator

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/passforge/internal/password"
)

const copiedMessage = "Password copied to clipboard!"

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case CopiedMsg:
		if msg.Err != nil {
			m.log.Error(msg.Err, "clipboard write failed")
			return m.showToast(fmt.Sprintf("Copy failed: %v", msg.Err), true)
		}
		m.log.Debug("password copied")
		return m.showToast(copiedMessage, false)

	case ThemeSavedMsg:
		if msg.Err != nil {
			m.log.Error(msg.Err, "theme flag not saved")
			return m.showToast("Theme could not be saved", true)
		}
		return m, nil

	case clearToastMsg:
		if msg.seq == m.toastSeq {
			m.state.Toast = nil
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Generate):
		m.state.Password = password.GenerateWith(m.source, m.state.Length, m.state.Selection)
		m.log.WithFields(map[string]any{
			"length":  m.state.Length,
			"charset": len(password.Alphabet(m.state.Selection)),
		}).Debug("password generated")
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if m.state.Password == "" {
			return m, nil
		}
		return m, copyCmd(m.clipboard, m.state.Password)

	case key.Matches(msg, m.keys.Theme):
		m.state.Mode = m.state.Mode.Toggle()
		return m, saveThemeCmd(m.store, m.state.Mode.Dark())

	case key.Matches(msg, m.keys.Shorter):
		m.state = m.state.WithLength(m.state.Length - 1)
		return m, nil

	case key.Matches(msg, m.keys.Longer):
		m.state = m.state.WithLength(m.state.Length + 1)
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	for i, binding := range m.keys.Classes {
		if key.Matches(msg, binding) {
			m.state.Selection = m.state.Selection.Toggle(password.Classes[i])
			return m, nil
		}
	}

	return m, nil
}

func (m Model) showToast(message string, isError bool) (tea.Model, tea.Cmd) {
	m.toastSeq++
	m.state.Toast = &Toast{Message: message, Error: isError}
	return m, clearToastCmd(m.toastSeq)
}
