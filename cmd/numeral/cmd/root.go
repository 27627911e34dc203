package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/govalues/numeral"
)

var (
	cfgFile    string
	localeName string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "numeral",
	Short: "Formats calculator results in local numeral scripts",
	Long: `numeral renders numbers the way a calculator display does: limited to a
number of significant digits, with integers in base 2, 8, 10 or 16, and with
digits written in the numeral script of the current locale.

Numeral scripts:
  latn     - ASCII digits (default)
  arabext  - Extended Arabic-Indic (ar_*, fa_IR)
  tamldec  - Tamil (ta_*)
  deva     - Devanagari (hi_*, bn_*, gu_*, mr_*)
  knda     - Kannada (kn_*)
  mlym     - Malayalam (ml_*)`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, .toml, .yaml or .json")
	rootCmd.PersistentFlags().StringVar(&localeName, "locale", "", "locale identifier (default: $LANG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// setup builds the locale and the formatter from the config file and the
// persistent flags.
func setup(cmd *cobra.Command) (numeral.Locale, *numeral.Formatter, error) {
	conf := numeral.DefaultConfig()
	if cfgFile != "" {
		c, err := numeral.LoadConfig(cfgFile)
		if err != nil {
			return numeral.Locale{}, nil, err
		}
		conf = c
	}
	if localeName != "" {
		conf.Locale = localeName
	}
	loc := conf.LocaleOrEnv()
	log := newLogger(cmd.ErrOrStderr())
	log.Debug("locale selected", "locale", loc, "tag", loc.Tag(), "script", loc.Script())

	f := numeral.NewFormatter(loc.Symbols(), log)
	if err := conf.Apply(f); err != nil {
		return numeral.Locale{}, nil, err
	}
	return loc, f, nil
}
