package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pdiddy/word2pdf/internal/office"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List office applications and whether they can be used",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		w := cmd.OutOrStdout()
		for _, l := range office.Launchers(cfg) {
			state := color.RedString("unavailable")
			if l.Available() {
				state = color.GreenString("available")
			}
			fmt.Fprintf(w, "%-16s %s\n", l.Name(), state)
		}
		if l, err := office.Detect(cfg); err == nil {
			fmt.Fprintf(w, "\nselected: %s (backend=%s)\n", l.Name(), cfg.Backend)
		} else {
			fmt.Fprintf(w, "\n%v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}
