package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/f3rmion/katsuyou/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize katsuyou configuration",
	Long: `Write a config.yaml with the default settings to your config
directory. Edit it to change the output format, history size, share
link base URL or the forms added to Anki notes.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.FileName)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.EnsureConfigDir(configDir); err != nil {
		return err
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	fmt.Printf("Created %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Edit config.yaml to taste")
	fmt.Println("  2. Run 'katsuyou conjugate 食べる' to print a table")
	fmt.Println("  3. Run 'katsuyou' for the interactive UI")
	return nil
}
