package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/katsuyou/internal/render"
	"github.com/f3rmion/katsuyou/internal/verb"
)

var conjugateCmd = &cobra.Command{
	Use:     "conjugate <verb>...",
	Aliases: []string{"c"},
	Short:   "Print the conjugation table of one or more verbs",
	Long: `Classify each verb and print its full conjugation table.

Examples:
  katsuyou conjugate 食べる
  katsuyou conjugate かく 話す --format markdown
  katsuyou conjugate 来る --category negative --category past
  katsuyou conjugate する --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConjugate,
}

func init() {
	rootCmd.AddCommand(conjugateCmd)
	conjugateCmd.Flags().StringP("format", "f", "", "output format: table, markdown or json (default from config)")
	conjugateCmd.Flags().StringSlice("category", nil, "only show these categories (repeatable)")
	conjugateCmd.Flags().Bool("no-romaji", false, "hide the romaji column")
	conjugateCmd.Flags().Bool("no-history", false, "do not record the verbs in history")
	conjugateCmd.Flags().Bool("no-color", false, "disable colored output")
}

// errFailed is returned when at least one verb could not be conjugated.
// The individual messages have already been printed.
var errFailed = errors.New("some verbs could not be conjugated")

func runConjugate(cmd *cobra.Command, args []string) error {
	noHistory, _ := cmd.Flags().GetBool("no-history")
	a, err := setup(setupOptions{history: !noHistory})
	if err != nil {
		return err
	}
	defer a.Close()

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = a.config.Output.Format
	}
	cats, _ := cmd.Flags().GetStringSlice("category")
	if len(cats) == 0 {
		cats = a.config.Output.Categories
	}
	categories, err := parseCategories(cats)
	if err != nil {
		return err
	}

	noRomaji, _ := cmd.Flags().GetBool("no-romaji")
	noColor, _ := cmd.Flags().GetBool("no-color")
	r := render.New(render.Options{
		Romaji: a.config.Output.Romaji && !noRomaji,
		Color:  a.config.Output.Color && !noColor,
	})

	var items []render.Item
	failed := false
	for _, arg := range args {
		res, err := a.engine.Conjugate(arg)
		if err != nil {
			fmt.Fprintln(os.Stderr, r.Error(err))
			failed = true
			continue
		}

		if a.history != nil {
			if _, err := a.history.Add(context.Background(), res.Verb); err != nil {
				a.logger.Warn("recording history", "verb", res.Verb.DictionaryForm, "error", err)
			}
		}

		item := render.Item{Result: res.Filter(categories...)}
		if e := a.lexicon.Find(res.Verb.DictionaryForm); e != nil {
			item.Meaning, item.JLPT = e.Meaning, e.JLPT
		}
		items = append(items, item)
	}

	if len(items) > 0 {
		out, err := r.Render(format, items)
		if err != nil {
			return err
		}
		fmt.Print(out)
	}

	if failed {
		return errFailed
	}
	return nil
}

func parseCategories(names []string) ([]verb.Category, error) {
	var out []verb.Category
	for _, n := range names {
		c := verb.Category(strings.ToLower(strings.TrimSpace(n)))
		if c.Index() < 0 {
			valid := make([]string, 0, len(verb.Categories()))
			for _, v := range verb.Categories() {
				valid = append(valid, string(v))
			}
			return nil, fmt.Errorf("unknown category %q (want one of %s)", n, strings.Join(valid, ", "))
		}
		out = append(out, c)
	}
	return out, nil
}
