package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>...",
	Short: "Parses numbers entered in the local script",
	Long: `Converts each argument to standard form and parses it as a number.
Prints the kind of the value and the value in standard form,
or "not a number".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, f, err := setup(cmd)
		if err != nil {
			return err
		}
		tr := loc.Transliterator()
		for _, arg := range args {
			v, ok := f.ParseNumber(tr.ToStandard(arg))
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), notANumber)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v\t%v\n", v.Kind(), v)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
