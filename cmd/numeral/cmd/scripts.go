package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/govalues/numeral"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	codeStyle   = lipgloss.NewStyle().Width(10)
	nameStyle   = lipgloss.NewStyle().Width(24)
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

var scriptsJSON bool

// scriptEntry is a row of the script listing in JSON form.
type scriptEntry struct {
	Script numeral.Script `json:"script"`
	Name   string         `json:"name"`
	Digits string         `json:"digits"`
	Active bool           `json:"active"`
}

var scriptsCmd = &cobra.Command{
	Use:   "scripts",
	Short: "Lists the supported numeral scripts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, _, err := setup(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if scriptsJSON {
			var entries []scriptEntry
			for _, s := range numeral.Scripts() {
				entries = append(entries, scriptEntry{s, s.Name(), digits(s), s == loc.Script()})
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}
		fmt.Fprintln(out, codeStyle.Render(headerStyle.Render("Code"))+
			nameStyle.Render(headerStyle.Render("Name"))+
			headerStyle.Render("Digits"))
		for _, s := range numeral.Scripts() {
			row := codeStyle.Render(s.Code()) + nameStyle.Render(s.Name()) + digits(s)
			if s == loc.Script() {
				row = activeStyle.Render(row)
			}
			fmt.Fprintln(out, row)
		}
		return nil
	},
}

func init() {
	scriptsCmd.Flags().BoolVar(&scriptsJSON, "json", false, "print the list as JSON")
	rootCmd.AddCommand(scriptsCmd)
}

// digits returns the ten digit glyphs of s in ascending order.
func digits(s numeral.Script) string {
	var b strings.Builder
	for d := range 10 {
		b.WriteRune(s.Digit(d))
	}
	return b.String()
}
