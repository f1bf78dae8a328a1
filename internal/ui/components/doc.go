// Package components provides the theme-aware building blocks of the
// passforge widget.
//
// Themes are immutable values selected by Mode and passed explicitly through
// RenderContext, so rendering never reads global state:
//
//	ctx := components.DefaultContext().WithTheme(components.ThemeFor(components.ModeDark))
//	out := components.PrimaryButton("Generate Password").ViewWithContext(ctx)
//
// Colours follow the Tailwind gray/blue/green scale.
package components
