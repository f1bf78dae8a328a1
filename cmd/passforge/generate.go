package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/passforge/internal/clipboard"
	"github.com/alexisbeaulieu97/passforge/internal/password"
	pferrors "github.com/alexisbeaulieu97/passforge/pkg/errors"
)

type generateOptions struct {
	Length    int
	Count     int
	NoUpper   bool
	NoLower   bool
	NoNumbers bool
	NoSymbols bool
	Secure    bool
	Seed      uint64
	Copy      bool
	Unbounded bool
}

func newGenerateCmd(app *AppContext) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Print random passwords",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("length") {
				opts.Length = app.Settings.Length
			}
			// An explicit --seed outranks secure from settings; only the two
			// flags together conflict.
			if !flags.Changed("secure") && !flags.Changed("seed") {
				opts.Secure = app.Settings.Secure
			}

			if err := validateGenerateOptions(opts, flags.Changed("seed")); err != nil {
				return err
			}

			sel := selectionFor(app.Settings.Selection(), opts)
			src := app.Settings.Source()
			switch {
			case flags.Changed("seed"):
				src = password.NewSeededSource(opts.Seed)
			case opts.Secure:
				src = password.CryptoSource()
			}

			log := app.Logger.WithFields(map[string]any{"length": opts.Length, "count": opts.Count})
			if sel.Empty() {
				log.Warn("no character classes selected; passwords will be empty")
			}

			gen := &password.Generator{Source: src, Length: opts.Length, Selection: sel}
			var last string
			for i := 0; i < opts.Count; i++ {
				last = gen.Next()
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), last); err != nil {
					return err
				}
			}
			log.Debug("passwords generated")

			if opts.Copy {
				if err := clipboard.NewOSC52(cmd.ErrOrStderr(), clipboard.DetectMultiplexer(nil)).Write(last); err != nil {
					log.Error(err, "copy failed")
					return err
				}
				log.Info("Password copied to clipboard!")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Length, "length", "l", password.DefaultLength, "Password length")
	cmd.Flags().IntVarP(&opts.Count, "count", "n", 1, "Number of passwords to print")
	cmd.Flags().BoolVar(&opts.NoUpper, "no-upper", false, "Exclude uppercase letters")
	cmd.Flags().BoolVar(&opts.NoLower, "no-lower", false, "Exclude lowercase letters")
	cmd.Flags().BoolVar(&opts.NoNumbers, "no-numbers", false, "Exclude digits")
	cmd.Flags().BoolVar(&opts.NoSymbols, "no-symbols", false, "Exclude symbols")
	cmd.Flags().BoolVar(&opts.Secure, "secure", false, "Draw from crypto/rand instead of math/rand")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "Seed a reproducible generator (not for real secrets)")
	cmd.Flags().BoolVar(&opts.Copy, "copy", false, "Copy the last password to the clipboard")
	cmd.Flags().BoolVar(&opts.Unbounded, "unbounded", false, "Allow lengths outside 4..32")

	return cmd
}

func validateGenerateOptions(opts generateOptions, seeded bool) error {
	if opts.Count < 1 {
		return pferrors.NewValidationError("count", fmt.Sprintf("must be at least 1, got %d", opts.Count), nil)
	}
	if !opts.Unbounded && (opts.Length < password.MinLength || opts.Length > password.MaxLength) {
		return pferrors.NewValidationError("length",
			fmt.Sprintf("must be between %d and %d, got %d (use --unbounded to override)", password.MinLength, password.MaxLength, opts.Length), nil)
	}
	if seeded && opts.Secure {
		return pferrors.NewValidationError("seed", "cannot be combined with --secure", nil)
	}
	return nil
}

func selectionFor(base password.Selection, opts generateOptions) password.Selection {
	if opts.NoUpper {
		base.Uppercase = false
	}
	if opts.NoLower {
		base.Lowercase = false
	}
	if opts.NoNumbers {
		base.Numbers = false
	}
	if opts.NoSymbols {
		base.Symbols = false
	}
	return base
}
