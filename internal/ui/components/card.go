package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Card is a bordered surface stacking its children vertically.
type Card struct {
	title    string
	action   Renderable
	children []Renderable
	gap      int
}

// NewCard creates a card with the given children.
func NewCard(children ...Renderable) *Card {
	return &Card{children: children, gap: 1}
}

// WithTitle sets the heading row.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithAction places a renderable at the right end of the heading row.
func (c *Card) WithAction(action Renderable) *Card {
	c.action = action
	return c
}

// WithGap sets the blank lines between children.
func (c *Card) WithGap(gap int) *Card {
	if gap >= 0 {
		c.gap = gap
	}
	return c
}

// Add appends children; nil values are skipped.
func (c *Card) Add(children ...Renderable) *Card {
	for _, child := range children {
		if child != nil {
			c.children = append(c.children, child)
		}
	}
	return c
}

// View renders with the default theme.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card. The context width is the outer width;
// children receive the inner width.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	const padX, padY = 2, 1

	inner := 0
	if ctx.Width > 0 {
		inner = ctx.Width - 2*padX - 2
		if inner < 1 {
			inner = 1
		}
	}
	childCtx := ctx.WithWidth(inner)

	blocks := make([]string, 0, len(c.children)+1)
	if c.title != "" {
		blocks = append(blocks, c.renderHeading(childCtx))
	}
	for _, child := range c.children {
		if child == nil {
			continue
		}
		blocks = append(blocks, child.ViewWithContext(childCtx))
	}

	sep := theme.Text().Render("")
	parts := make([]string, 0, len(blocks)*(c.gap+1))
	for i, block := range blocks {
		if i > 0 {
			for j := 0; j < c.gap; j++ {
				parts = append(parts, sep)
			}
		}
		parts = append(parts, block)
	}

	style := lipgloss.NewStyle().
		Border(theme.Border).
		BorderForeground(theme.Palette.Muted).
		BorderBackground(theme.Palette.Page).
		Background(theme.Palette.Surface).
		Foreground(theme.Palette.Text).
		Padding(padY, padX)
	if inner > 0 {
		style = style.Width(inner + 2*padX)
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (c *Card) renderHeading(ctx RenderContext) string {
	title := ctx.Theme.Title().Render(c.title)
	if c.action == nil {
		return title
	}

	action := c.action.ViewWithContext(ctx.WithWidth(0))
	gapWidth := 1
	if ctx.Width > 0 {
		if w := ctx.Width - lipgloss.Width(title) - lipgloss.Width(action); w > 1 {
			gapWidth = w
		}
	}
	spacer := ctx.Theme.Text().Width(gapWidth).Render("")
	return lipgloss.JoinHorizontal(lipgloss.Center, title, spacer, action)
}
