package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Mode selects the light or dark palette.
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
)

// ModeFromDark maps the persisted theme flag to a Mode.
func ModeFromDark(dark bool) Mode {
	if dark {
		return ModeDark
	}
	return ModeLight
}

// Dark reports whether m is the dark mode.
func (m Mode) Dark() bool {
	return m == ModeDark
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

func (m Mode) String() string {
	if m == ModeDark {
		return "dark"
	}
	return "light"
}

// Icon is the glyph of the toggle button: a sun offers light mode, a moon dark.
func (m Mode) Icon() string {
	if m == ModeDark {
		return "☀"
	}
	return "☾"
}

// Tailwind shades used by both palettes.
const (
	gray100  = lipgloss.Color("#f3f4f6")
	gray500  = lipgloss.Color("#6b7280")
	gray700  = lipgloss.Color("#374151")
	gray800  = lipgloss.Color("#1f2937")
	gray900  = lipgloss.Color("#111827")
	white    = lipgloss.Color("#ffffff")
	blue200  = lipgloss.Color("#bfdbfe")
	blue400  = lipgloss.Color("#60a5fa")
	blue600  = lipgloss.Color("#2563eb")
	green500 = lipgloss.Color("#22c55e")
	red500   = lipgloss.Color("#ef4444")
	yellow   = lipgloss.Color("#facc15")
)

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Page      lipgloss.Color
	Surface   lipgloss.Color
	Inset     lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Primary   lipgloss.Color
	OnPrimary lipgloss.Color
	Success   lipgloss.Color
	Danger    lipgloss.Color
	Accent    lipgloss.Color
	Track     lipgloss.Color
}

// Theme is an immutable styling theme. Create it with ThemeFor.
type Theme struct {
	Mode    Mode
	Palette Palette
	Border  lipgloss.Border
}

// ThemeFor returns the theme for mode.
func ThemeFor(mode Mode) Theme {
	palette := Palette{
		Page:      gray100,
		Surface:   white,
		Inset:     gray100,
		Text:      gray800,
		Muted:     gray500,
		Primary:   blue600,
		OnPrimary: white,
		Success:   green500,
		Danger:    red500,
		Accent:    yellow,
		Track:     blue200,
	}
	if mode == ModeDark {
		palette.Page = gray900
		palette.Surface = gray800
		palette.Inset = gray700
		palette.Text = white
		palette.Track = blue400
	}

	return Theme{Mode: mode, Palette: palette, Border: lipgloss.RoundedBorder()}
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	return ThemeFor(ModeLight)
}

// Text returns the body text style on the surface colour.
func (t Theme) Text() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Palette.Text).
		Background(t.Palette.Surface)
}

// MutedText returns the secondary text style.
func (t Theme) MutedText() lipgloss.Style {
	return t.Text().Foreground(t.Palette.Muted)
}

// Title returns the heading style.
func (t Theme) Title() lipgloss.Style {
	return t.Text().Bold(true)
}

// RenderContext carries the theme and layout width into components.
type RenderContext struct {
	Theme Theme
	Width int
}

// DefaultContext returns a light-theme context with no width constraint.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a copy of ctx using theme.
func (ctx RenderContext) WithTheme(theme Theme) RenderContext {
	ctx.Theme = theme
	return ctx
}

// WithWidth returns a copy of ctx constrained to width columns.
func (ctx RenderContext) WithWidth(width int) RenderContext {
	ctx.Width = width
	return ctx
}

// Renderable is anything that can draw itself with a context.
type Renderable interface {
	ViewWithContext(ctx RenderContext) string
}
