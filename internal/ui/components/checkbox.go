package components

// Checkbox renders a labelled toggle.
type Checkbox struct {
	label   string
	checked bool
	hotkey  string
}

// NewCheckbox creates an unchecked checkbox.
func NewCheckbox(label string) *Checkbox {
	return &Checkbox{label: label}
}

// WithChecked sets the checked state.
func (c *Checkbox) WithChecked(checked bool) *Checkbox {
	c.checked = checked
	return c
}

// WithHotkey shows the key that toggles the checkbox.
func (c *Checkbox) WithHotkey(key string) *Checkbox {
	c.hotkey = key
	return c
}

// Checked reports the checked state.
func (c *Checkbox) Checked() bool {
	return c.checked
}

// View renders with the default theme.
func (c *Checkbox) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders "[x] label" in the theme colours.
func (c *Checkbox) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	box := "[ ]"
	style := theme.Text()
	if c.checked {
		box = "[x]"
		style = style.Foreground(theme.Palette.Primary)
	}

	out := style.Render(box + " " + c.label)
	if c.hotkey != "" {
		out += theme.MutedText().Render(" (" + c.hotkey + ")")
	}
	return out
}
