package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "Shows the separators and operator glyphs of the locale",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, f, err := setup(cmd)
		if err != nil {
			return err
		}
		sym := f.Symbols()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Locale:     %v (%v)\n", loc, loc.Tag())
		fmt.Fprintf(out, "Script:     %v (%v)\n", loc.Script(), loc.Script().Name())
		fmt.Fprintf(out, "Thousands:  %q\n", sym.Thousands)
		fmt.Fprintf(out, "Decimal:    %q\n", sym.Decimal)
		fmt.Fprintf(out, "Multiply:   %v\n", sym.Mul)
		fmt.Fprintf(out, "Divide:     %v\n", sym.Div)
		fmt.Fprintf(out, "Equals:     %v\n", sym.Equ)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(symbolsCmd)
}
