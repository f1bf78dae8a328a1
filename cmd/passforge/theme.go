package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/passforge/internal/store"
	"github.com/alexisbeaulieu97/passforge/internal/ui/components"
	pferrors "github.com/alexisbeaulieu97/passforge/pkg/errors"
)

func newThemeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the persisted widget theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.OpenStore()
			if err != nil {
				if len(args) > 0 {
					app.Logger.Error(err, "theme flag not saved")
					return err
				}
				// An unreadable state file reads as light, same as the widget.
				app.Logger.Warn("theme state unreadable; showing light")
			}

			mode := components.ModeFromDark(store.LoadDark(storeOrNil(s)))
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), mode)
				return nil
			}

			switch args[0] {
			case "light":
				mode = components.ModeLight
			case "dark":
				mode = components.ModeDark
			case "toggle":
				mode = mode.Toggle()
			default:
				return pferrors.NewValidationError("theme", fmt.Sprintf("unknown theme %q", args[0]), nil)
			}

			if err := store.SaveDark(s, mode.Dark()); err != nil {
				app.Logger.Error(err, "theme flag not saved")
				return err
			}
			app.Logger.WithField("theme", mode.String()).Debug("theme saved")

			fmt.Fprintln(cmd.OutOrStdout(), mode)
			return nil
		},
	}

	return cmd
}

// storeOrNil keeps a nil *FileStore from becoming a non-nil store.Store.
func storeOrNil(s *store.FileStore) store.Store {
	if s == nil {
		return nil
	}
	return s
}
