package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/passforge/internal/clipboard"
	"github.com/alexisbeaulieu97/passforge/internal/logger"
	"github.com/alexisbeaulieu97/passforge/internal/tui/generator"
)

// runWidget draws the widget on term, which root has already checked is a
// terminal. Clipboard sequences go to the same stream.
func runWidget(app *AppContext, term io.Writer) error {
	m := newWidgetModel(app, term)

	app.Logger.Debug("launching widget")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(term))
	if _, err := p.Run(); err != nil {
		app.Logger.Error(err, "widget execution failed")
		return fmt.Errorf("failed to run widget: %w", err)
	}
	app.Logger.Debug("widget closed")

	return nil
}

func newWidgetModel(app *AppContext, term io.Writer) generator.Model {
	fs, err := app.OpenStore()
	if err != nil {
		// The widget still works without persistence; it just starts light.
		app.Logger.Error(err, "theme state unavailable")
	}

	sel := app.Settings.Selection()

	// The alternate screen owns the terminal, so the widget logs nowhere.
	return generator.NewModel(generator.Options{
		Length:    app.Settings.Length,
		Selection: &sel,
		Source:    app.Settings.Source(),
		Store:     storeOrNil(fs),
		Clipboard: clipboard.NewOSC52(term, clipboard.DetectMultiplexer(nil)),
		Logger:    logger.Nop(),
	})
}
