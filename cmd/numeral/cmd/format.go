package cmd

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/govalues/numeral"
)

const notANumber = "not a number"

var (
	digitLimit int
	base       int
	keepZeros  bool
	short      bool
)

var formatCmd = &cobra.Command{
	Use:   "format <number>...",
	Short: "Formats numbers for display",
	Long: `Formats each number as a calculator display would show it.

Numbers may be written in ASCII digits or in the digits of the locale,
with the decimal separator of the locale. Fractions such as 1/3 are
formatted as rationals, true and false as booleans.`,
	Example: `  numeral format 0.1230 1230 1/3
  numeral format --base 16 252
  numeral --locale hi_IN.utf8 format 3.14159265358979`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, f, err := setup(cmd)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("digits") {
			f.SetDigitLimit(digitLimit)
		}
		if flags.Changed("base") {
			if err := f.SetIntegerBase(base); err != nil {
				return err
			}
		}
		if flags.Changed("keep-zeros") {
			f.SetChopZeros(!keepZeros)
		}

		tr := loc.Transliterator()
		for _, arg := range args {
			v, ok := parseArg(f, tr.ToStandard(arg))
			var s string
			switch {
			case !ok:
				s = notANumber
			case short:
				s = f.ShortFormat(v)
			default:
				s = f.FormatNumber(v)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tr.ToLocal(s))
		}
		return nil
	},
}

func init() {
	formatCmd.Flags().IntVarP(&digitLimit, "digits", "d", 9, "maximum number of significant digits")
	formatCmd.Flags().IntVarP(&base, "base", "b", 10, "integer base: 2, 8, 10 or 16")
	formatCmd.Flags().BoolVar(&keepZeros, "keep-zeros", false, "keep trailing zeros of decimals")
	formatCmd.Flags().BoolVarP(&short, "short", "s", false, "use scientific notation for results longer than 7 characters")
	rootCmd.AddCommand(formatCmd)
}

// parseArg converts a command line argument in standard form to a value.
// In addition to the numerals accepted by the formatter, it accepts
// fractions and the literals true and false.
func parseArg(f *numeral.Formatter, s string) (numeral.Value, bool) {
	switch strings.ToLower(s) {
	case "true":
		return numeral.NewBool(true), true
	case "false":
		return numeral.NewBool(false), true
	}
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, ok := new(big.Int).SetString(num, 10)
		if !ok {
			return numeral.Value{}, false
		}
		d, ok := new(big.Int).SetString(den, 10)
		if !ok || d.Sign() == 0 {
			return numeral.Value{}, false
		}
		return numeral.NewRat(new(big.Rat).SetFrac(n, d)), true
	}
	return f.ParseNumber(s)
}
