package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects the button colours.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSuccess
	ButtonVariantGhost
)

// Button is a visual-only button; key handling lives in the model.
type Button struct {
	label    string
	variant  ButtonVariant
	disabled bool
}

// NewButton creates a primary button with the given label.
func NewButton(label string) *Button {
	return &Button{label: label, variant: ButtonVariantPrimary}
}

// PrimaryButton creates a primary (blue) button.
func PrimaryButton(label string) *Button {
	return NewButton(label)
}

// SuccessButton creates a success (green) button.
func SuccessButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSuccess)
}

// GhostButton creates a borderless button that blends into the surface.
func GhostButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantGhost)
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// Disabled reports whether the button is drawn faint.
func (b *Button) Disabled() bool {
	return b.disabled
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// View renders with the default theme.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button. A positive context width stretches it
// to the full width of the context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx).Render(b.label)
}

func (b *Button) computeStyle(ctx RenderContext) lipgloss.Style {
	p := ctx.Theme.Palette
	style := lipgloss.NewStyle().Padding(0, 2).Bold(true)

	switch b.variant {
	case ButtonVariantSuccess:
		style = style.Background(p.Success).Foreground(p.OnPrimary)
	case ButtonVariantGhost:
		style = style.Background(p.Surface).Foreground(p.Accent).Padding(0, 1)
	default:
		style = style.Background(p.Primary).Foreground(p.OnPrimary)
	}

	if b.variant != ButtonVariantGhost && ctx.Width > 0 {
		style = style.Width(ctx.Width).Align(lipgloss.Center)
	}
	if b.disabled {
		style = style.Faint(true)
	}
	return style
}
