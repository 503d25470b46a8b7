package cmd

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/f3rmion/katsuyou/internal/verb"
)

var verbsCmd = &cobra.Command{
	Use:   "verbs",
	Short: "List the verbs in the lexicon",
	Long: `List the verbs known to the lexicon, optionally filtered by class
or JLPT level.

Examples:
  katsuyou verbs
  katsuyou verbs --type ichidan
  katsuyou verbs --jlpt N5`,
	Args: cobra.NoArgs,
	RunE: runVerbs,
}

func init() {
	rootCmd.AddCommand(verbsCmd)
	verbsCmd.Flags().String("type", "", "godan, ichidan or irregular")
	verbsCmd.Flags().String("jlpt", "", "JLPT level, e.g. N5")
}

func runVerbs(cmd *cobra.Command, args []string) error {
	a, err := setup(setupOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	typ, _ := cmd.Flags().GetString("type")
	vt := verb.VerbType(strings.ToLower(typ))
	if typ != "" && !vt.Valid() {
		return fmt.Errorf("unknown verb type %q (want godan, ichidan or irregular)", typ)
	}
	jlpt, _ := cmd.Flags().GetString("jlpt")

	entries := a.lexicon.Filter(vt, jlpt)
	verbW, readW := 0, 0
	for _, e := range entries {
		verbW = max(verbW, runewidth.StringWidth(e.Verb))
		readW = max(readW, runewidth.StringWidth(e.Reading))
	}
	for _, e := range entries {
		fmt.Printf("%s  %s  %-9s  %-2s  %s\n",
			runewidth.FillRight(e.Verb, verbW),
			runewidth.FillRight(e.Reading, readW),
			e.Type, e.JLPT, e.Meaning)
	}
	fmt.Printf("\n%d verbs\n", len(entries))
	return nil
}
