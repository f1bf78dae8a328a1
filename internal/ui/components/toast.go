package components

// ToastVariant selects success or error colouring.
type ToastVariant int

const (
	ToastVariantSuccess ToastVariant = iota
	ToastVariantError
)

// Toast is a one-line transient notification.
type Toast struct {
	message string
	variant ToastVariant
}

// SuccessToast creates a success notification.
func SuccessToast(message string) *Toast {
	return &Toast{message: message, variant: ToastVariantSuccess}
}

// ErrorToast creates an error notification.
func ErrorToast(message string) *Toast {
	return &Toast{message: message, variant: ToastVariantError}
}

// View renders with the default theme.
func (t *Toast) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the icon and message.
func (t *Toast) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	style := theme.Text().Bold(true)
	icon := "✓"
	if t.variant == ToastVariantError {
		style = style.Foreground(theme.Palette.Danger)
		icon = "✗"
	} else {
		style = style.Foreground(theme.Palette.Success)
	}
	return style.Render(icon + " " + t.message)
}
