package components

import "github.com/charmbracelet/lipgloss"

// TextVariant picks a typography preset.
type TextVariant int

const (
	TextVariantBody TextVariant = iota
	TextVariantMuted
	TextVariantTitle
	TextVariantCode
)

// Text renders a single styled string.
type Text struct {
	content string
	variant TextVariant
	bold    bool
}

// NewText creates body text.
func NewText(content string) *Text {
	return &Text{content: content}
}

// MutedText creates secondary text.
func MutedText(content string) *Text {
	return NewText(content).WithVariant(TextVariantMuted)
}

// TitleText creates a heading.
func TitleText(content string) *Text {
	return NewText(content).WithVariant(TextVariantTitle)
}

// WithVariant sets the typography preset.
func (t *Text) WithVariant(variant TextVariant) *Text {
	t.variant = variant
	return t
}

// Bold toggles bold rendering.
func (t *Text) Bold() *Text {
	t.bold = true
	return t
}

// Content returns the raw text.
func (t *Text) Content() string {
	return t.content
}

// View renders with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the context theme.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.style(ctx.Theme).Render(t.content)
}

func (t *Text) style(theme Theme) lipgloss.Style {
	var style lipgloss.Style
	switch t.variant {
	case TextVariantMuted:
		style = theme.MutedText()
	case TextVariantTitle:
		style = theme.Title()
	case TextVariantCode:
		style = theme.Text().
			Background(theme.Palette.Inset).
			Padding(1, 2).
			Align(lipgloss.Center)
	default:
		style = theme.Text()
	}
	if t.bold {
		style = style.Bold(true)
	}
	return style
}
