package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/f3rmion/katsuyou/internal/clipboard"
	"github.com/f3rmion/katsuyou/internal/share"
)

var shareCmd = &cobra.Command{
	Use:   "share <verb|url>",
	Short: "Build or read a share link for a verb",
	Long: `Print a link that opens the given verb, or with --decode read the
verb back out of such a link.

Examples:
  katsuyou share 食べる
  katsuyou share 食べる --base https://example.com/conjugate
  katsuyou share --decode 'https://katsuyou.app/?verb=%E9%A3%9F%E3%81%B9%E3%82%8B'`,
	Args: cobra.ExactArgs(1),
	RunE: runShare,
}

func init() {
	rootCmd.AddCommand(shareCmd)
	shareCmd.Flags().String("base", "", "base URL (default from config)")
	shareCmd.Flags().Bool("decode", false, "read the verb from a link")
	shareCmd.Flags().Bool("copy", false, "also copy the result to the clipboard")
}

func runShare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	decode, _ := cmd.Flags().GetBool("decode")
	var out string
	if decode {
		v, ok := share.DecodeURL(args[0])
		if !ok {
			return fmt.Errorf("no verb in %q", args[0])
		}
		out = v
	} else {
		base, _ := cmd.Flags().GetString("base")
		if base == "" {
			base = cfg.Share.BaseURL
		}
		out, err = share.Link(base, args[0])
		if err != nil {
			return err
		}
	}
	fmt.Println(out)

	if c, _ := cmd.Flags().GetBool("copy"); c {
		if err := clipboard.Write(out); err != nil {
			return err
		}
	}
	return nil
}
