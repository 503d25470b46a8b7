package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/katsuyou/internal/render"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <verb>",
	Short: "Show how a verb is classified",
	Long: `Classify a verb without conjugating it: its class, stem, ending and
reading.

With --explain, also show which rule decided the class and what the
morphological analyzer reads.

Examples:
  katsuyou classify 帰る
  katsuyou classify 持って来る --explain`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().Bool("explain", false, "show the deciding rule and the analyzer output")
}

func runClassify(cmd *cobra.Command, args []string) error {
	a, err := setup(setupOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	r := render.New(render.Options{Romaji: a.config.Output.Romaji, Color: a.config.Output.Color})
	explain, _ := cmd.Flags().GetBool("explain")

	info, err := a.engine.Classify(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, r.Error(err))
	} else {
		fmt.Print(r.VerbInfo(info))
		if e := a.lexicon.Find(info.DictionaryForm); e != nil && e.Meaning != "" {
			fmt.Printf("meaning:  %s\n", e.Meaning)
		}
	}

	if explain {
		fmt.Println()
		fmt.Printf("rule:     %s\n", a.engine.Explain(args[0]))
		if a.tokenizer != nil {
			an, aerr := a.tokenizer.Analyze(strings.TrimSpace(args[0]))
			if aerr != nil {
				fmt.Printf("analyzer: %v\n", aerr)
			} else {
				fmt.Printf("analyzer: %s [%s]", an.Reading, strings.Join(an.Tokens, " | "))
				if an.Conjugation != "" {
					fmt.Printf(" %s", an.Conjugation)
				}
				fmt.Println()
			}
		}
	}
	return err
}
