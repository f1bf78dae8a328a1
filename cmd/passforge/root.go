package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/passforge/internal/password"
)

type rootFlags struct {
	verbose    bool
	configPath string
	envFile    string
	statePath  string
}

// widgetRunner is swapped in tests so the root command never opens a TTY.
var widgetRunner = runWidget

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "passforge",
		Short:         "passforge generates random passwords from selectable character classes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}

			if isTerminal(cmd.OutOrStdout()) {
				return widgetRunner(app, cmd.OutOrStdout())
			}

			// Piped output: behave like a single `generate`.
			pw := password.GenerateWith(app.Settings.Source(), app.Settings.Length, app.Settings.Selection())
			_, err := fmt.Fprintln(cmd.OutOrStdout(), pw)
			return err
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to settings file (default ~/.passforge/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "Dotenv file with PASSFORGE_* overrides")
	cmd.PersistentFlags().StringVar(&flags.statePath, "state", "", "Path to the theme state file (default ~/.passforge/state.json)")

	cmd.AddCommand(newGenerateCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
