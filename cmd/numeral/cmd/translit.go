package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/govalues/numeral"
)

var (
	toStandard bool
	scriptCode string
)

var translitCmd = &cobra.Command{
	Use:   "translit <text>...",
	Short: "Converts digits between ASCII and the local script",
	Example: `  numeral translit --script deva 42
  numeral translit --script deva --standard ४२`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var tr numeral.Transliterator
		if scriptCode != "" {
			s, err := numeral.ParseScript(scriptCode)
			if err != nil {
				return fmt.Errorf("--script %q: %w", scriptCode, err)
			}
			tr = numeral.NewTransliterator(s)
		} else {
			loc, _, err := setup(cmd)
			if err != nil {
				return err
			}
			tr = loc.Transliterator()
		}
		for _, arg := range args {
			if toStandard {
				fmt.Fprintln(cmd.OutOrStdout(), tr.ToStandard(arg))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), tr.ToLocal(arg))
			}
		}
		return nil
	},
}

func init() {
	translitCmd.Flags().BoolVar(&toStandard, "standard", false, "convert to ASCII digits instead")
	translitCmd.Flags().StringVar(&scriptCode, "script", "", "numeral script (default: script of the locale)")
	rootCmd.AddCommand(translitCmd)
}
