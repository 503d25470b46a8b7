package cmd

import (
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive [verb]",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch the terminal UI.

Features:
  - Type a verb to see its full conjugation table
  - Switch between categories, toggle romaji
  - Browse history and the verb list
  - Copy forms or a share link to the clipboard

Controls:
  Enter   Conjugate
  ?       Help
  q       Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
