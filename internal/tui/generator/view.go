package generator

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/passforge/internal/password"
	"github.com/alexisbeaulieu97/passforge/internal/ui/components"
)

const (
	maxCardWidth = 48
	// Below this height the card drops the blank lines between rows.
	compactHeight = 28
)

// View renders the current model state.
func (m Model) View() string {
	theme := components.ThemeFor(m.state.Mode)
	ctx := components.DefaultContext().WithTheme(theme).WithWidth(m.cardWidth())

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		m.renderCard(ctx),
		"",
		m.help.View(m.keys),
	)

	if m.width == 0 || m.height == 0 {
		return body
	}

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		body,
		lipgloss.WithWhitespaceBackground(theme.Palette.Page),
	)
}

func (m Model) cardWidth() int {
	if m.width > 0 && m.width-4 < maxCardWidth {
		return m.width - 4
	}
	return maxCardWidth
}

func (m Model) cardGap() int {
	if m.height > 0 && m.height < compactHeight {
		return 0
	}
	return 1
}

// generateButton is faint while no class is selected, since generating
// would only produce an empty password.
func (m Model) generateButton() *components.Button {
	return components.PrimaryButton("✦ Generate Password").
		WithDisabled(m.state.Selection.Empty())
}

func (m Model) renderCard(ctx components.RenderContext) string {
	st := m.state

	card := components.NewCard().
		WithTitle("🔐 Password Generator").
		WithAction(components.GhostButton(st.Mode.Icon())).
		WithGap(m.cardGap())

	card.Add(
		lengthControl{length: st.Length},
		m.generateButton(),
	)

	if st.Password != "" {
		card.Add(
			components.NewText(st.Password).WithVariant(components.TextVariantCode),
			components.SuccessButton("⧉ Copy to Clipboard"),
		)
	}

	card.Add(classList{selection: st.Selection})

	if st.Toast != nil {
		if st.Toast.Error {
			card.Add(components.ErrorToast(st.Toast.Message))
		} else {
			card.Add(components.SuccessToast(st.Toast.Message))
		}
	}

	return card.ViewWithContext(ctx)
}

// lengthControl renders the length label above its slider.
type lengthControl struct {
	length int
}

func (l lengthControl) ViewWithContext(ctx components.RenderContext) string {
	label := ctx.Theme.Title().Render(fmt.Sprintf("Password Length: %d", l.length))
	slider := components.NewSlider(l.length, password.MinLength, password.MaxLength)
	return lipgloss.JoinVertical(lipgloss.Left, label, slider.ViewWithContext(ctx))
}

// classList renders one checkbox per character class.
type classList struct {
	selection password.Selection
}

func (c classList) ViewWithContext(ctx components.RenderContext) string {
	rows := make([]string, 0, len(password.Classes))
	for i, class := range password.Classes {
		box := components.NewCheckbox("Include " + class.String()).
			WithChecked(c.selection.Has(class)).
			WithHotkey(fmt.Sprintf("%d", i+1))
		rows = append(rows, box.ViewWithContext(ctx))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
