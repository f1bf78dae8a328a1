package generator

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/passforge/internal/password"
	"github.com/alexisbeaulieu97/passforge/internal/store"
	"github.com/alexisbeaulieu97/passforge/internal/ui/components"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
}

func TestUpdate_GenerateWithFixedSource(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := update(t, m, runeKey('g'))
	assert.Nil(t, cmd)
	assert.Equal(t, "AAAAAAAA", m.State().Password)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "AAAAAAAA", m.State().Password)
}

func TestUpdate_GenerateWithEmptySelectionYieldsEmpty(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, runeKey('1'))
	require.True(t, m.State().Selection.Empty())

	m, _ = update(t, m, runeKey('g'))
	assert.Equal(t, "", m.State().Password)
}

func TestUpdate_LengthKeysClamp(t *testing.T) {
	m, _, _ := newTestModel(t)

	for i := 0; i < 10; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	assert.Equal(t, password.MinLength, m.State().Length)

	for i := 0; i < 40; i++ {
		m, _ = update(t, m, runeKey('l'))
	}
	assert.Equal(t, password.MaxLength, m.State().Length)

	m, _ = update(t, m, runeKey('h'))
	assert.Equal(t, password.MaxLength-1, m.State().Length)

	m, _ = update(t, m, runeKey('g'))
	assert.Len(t, m.State().Password, password.MaxLength-1)
}

func TestUpdate_ClassToggles(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, runeKey('2'))
	m, _ = update(t, m, runeKey('3'))
	m, _ = update(t, m, runeKey('4'))
	assert.Equal(t, password.AllClasses(), m.State().Selection)

	m, _ = update(t, m, runeKey('1'))
	assert.Equal(t, password.Selection{Lowercase: true, Numbers: true, Symbols: true}, m.State().Selection)
}

func TestUpdate_CopyWithoutPasswordIsNoop(t *testing.T) {
	m, _, rec := newTestModel(t)

	_, cmd := update(t, m, runeKey('c'))
	assert.Nil(t, cmd)
	assert.Zero(t, rec.Count)
}

func TestUpdate_CopyWritesClipboardAndShowsToast(t *testing.T) {
	m, _, rec := newTestModel(t)
	m, _ = update(t, m, runeKey('g'))

	m, cmd := update(t, m, runeKey('c'))
	require.NotNil(t, cmd)

	msg := cmd()
	copied, ok := msg.(CopiedMsg)
	require.True(t, ok)
	require.NoError(t, copied.Err)
	assert.Equal(t, "AAAAAAAA", rec.Last)

	m, cmd = update(t, m, copied)
	require.NotNil(t, cmd, "toast schedules its own dismissal")
	require.NotNil(t, m.State().Toast)
	assert.Equal(t, "Password copied to clipboard!", m.State().Toast.Message)
	assert.False(t, m.State().Toast.Error)
}

func TestUpdate_CopyFailureShowsErrorToast(t *testing.T) {
	m, _, rec := newTestModel(t)
	rec.Err = errors.New("permission denied")
	m, _ = update(t, m, runeKey('g'))

	_, cmd := update(t, m, runeKey('c'))
	m, _ = update(t, m, cmd())

	require.NotNil(t, m.State().Toast)
	assert.True(t, m.State().Toast.Error)
	assert.Contains(t, m.State().Toast.Message, "permission denied")
}

func TestUpdate_ClearToastIgnoresStaleSequence(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, CopiedMsg{})
	m, _ = update(t, m, CopiedMsg{})
	require.Equal(t, 2, m.toastSeq)

	m, _ = update(t, m, clearToastMsg{seq: 1})
	assert.NotNil(t, m.State().Toast)

	m, _ = update(t, m, clearToastMsg{seq: 2})
	assert.Nil(t, m.State().Toast)
}

func TestUpdate_ThemeTogglePersistsFlag(t *testing.T) {
	m, st, _ := newTestModel(t)

	m, cmd := update(t, m, runeKey('t'))
	assert.Equal(t, components.ModeDark, m.State().Mode)
	require.NotNil(t, cmd)

	saved, ok := cmd().(ThemeSavedMsg)
	require.True(t, ok)
	assert.True(t, saved.Dark)
	require.NoError(t, saved.Err)

	v, _ := st.Get(store.DarkKey)
	assert.Equal(t, "true", v)

	m, cmd = update(t, m, runeKey('t'))
	assert.Equal(t, components.ModeLight, m.State().Mode)
	_ = cmd()
	v, _ = st.Get(store.DarkKey)
	assert.Equal(t, "false", v)
}

func TestUpdate_ThemeSaveFailureShowsToast(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, ThemeSavedMsg{Dark: true, Err: errors.New("read-only")})
	require.NotNil(t, m.State().Toast)
	assert.True(t, m.State().Toast.Error)
}

func TestUpdate_HelpToggle(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, runeKey('?'))
	assert.True(t, m.help.ShowAll)
	m, _ = update(t, m, runeKey('?'))
	assert.False(t, m.help.ShowAll)
}

func TestUpdate_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)

	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := update(t, m, msg)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, msg.String())
	}
}
