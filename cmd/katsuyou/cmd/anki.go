package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/katsuyou/internal/anki"
)

var ankiCmd = &cobra.Command{
	Use:   "anki",
	Short: "Work with Anki decks",
	Long:  `Commands for reading Anki .apkg files and adding conjugated forms to their notes.`,
}

var ankiInspectCmd = &cobra.Command{
	Use:   "inspect <file.apkg>",
	Short: "Inspect an Anki deck",
	Long: `Inspect an Anki .apkg file to see its structure:
  - Decks
  - Note types (models) and their fields
  - Sample notes

Example:
  katsuyou anki inspect verbs.apkg`,
	Args: cobra.ExactArgs(1),
	RunE: runAnkiInspect,
}

var ankiAugmentCmd = &cobra.Command{
	Use:   "augment <file.apkg>",
	Short: "Add conjugated forms to the notes of a deck",
	Long: `Read an Anki deck, conjugate the verb in each note and write a new
deck with one extra field per form (Katsuyou_polite_masu, ...).

The verb field is taken from --field, then from anki.field in the
config, and is otherwise detected from the notes.

Examples:
  katsuyou anki augment verbs.apkg
  katsuyou anki augment verbs.apkg --field Expression -o verbs-conj.apkg
  katsuyou anki augment verbs.apkg --forms polite/masu,negative/nai --romaji`,
	Args: cobra.ExactArgs(1),
	RunE: runAnkiAugment,
}

var (
	ankiInspectLimit  int
	ankiAugmentField  string
	ankiAugmentOutput string
	ankiAugmentForms  []string
	ankiAugmentRomaji bool
)

func init() {
	rootCmd.AddCommand(ankiCmd)
	ankiCmd.AddCommand(ankiInspectCmd)
	ankiCmd.AddCommand(ankiAugmentCmd)

	ankiInspectCmd.Flags().IntVarP(&ankiInspectLimit, "limit", "n", 5, "Number of sample notes to show")

	ankiAugmentCmd.Flags().StringVarP(&ankiAugmentField, "field", "f", "", "Field holding the verb (default from config, else detected)")
	ankiAugmentCmd.Flags().StringVarP(&ankiAugmentOutput, "output", "o", "", "Output file (default <name>.katsuyou.apkg)")
	ankiAugmentCmd.Flags().StringSliceVar(&ankiAugmentForms, "forms", nil, "Form IDs to add (default from config)")
	ankiAugmentCmd.Flags().BoolVar(&ankiAugmentRomaji, "romaji", false, "Append romaji to each form")
}

func runAnkiInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	fmt.Printf("Opening: %s\n\n", path)

	pkg, err := anki.Open(path)
	if err != nil {
		return fmt.Errorf("opening package: %w", err)
	}
	defer pkg.Close()

	fmt.Print(pkg.Summary())
	fmt.Println()

	fmt.Printf("Sample Notes (first %d):\n", ankiInspectLimit)
	for i, note := range pkg.Notes {
		if i >= ankiInspectLimit {
			break
		}

		model := pkg.Model(note)
		modelName := "unknown"
		var fieldNames []string
		if model != nil {
			modelName = model.Name
			fieldNames = model.FieldNames()
		}

		fmt.Printf("\n  Note %d (Model: %s):\n", note.ID, modelName)
		for j, value := range note.Fields {
			fieldName := fmt.Sprintf("Field %d", j)
			if j < len(fieldNames) {
				fieldName = fieldNames[j]
			}
			display := anki.StripHTML(value)
			if r := []rune(display); len(r) > 60 {
				display = string(r[:60]) + "..."
			}
			fmt.Printf("    %s: %s\n", fieldName, display)
		}
	}
	return nil
}

func runAnkiAugment(cmd *cobra.Command, args []string) error {
	path := args[0]

	a, err := setup(setupOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	pkg, err := anki.Open(path)
	if err != nil {
		return fmt.Errorf("opening package: %w", err)
	}
	defer pkg.Close()

	fmt.Fprintf(os.Stderr, "Opened: %s (%d notes)\n", path, len(pkg.Notes))

	field := ankiAugmentField
	if field == "" && hasField(pkg, a.config.Anki.Field) {
		field = a.config.Anki.Field
	}
	if field == "" {
		field = anki.DetectField(pkg, func(s string) bool {
			_, err := a.engine.Classify(s)
			return err == nil
		})
		if field == "" {
			return fmt.Errorf("no field holds dictionary-form verbs; use --field")
		}
		fmt.Fprintf(os.Stderr, "Detected verb field: %s\n", field)
	}

	forms := ankiAugmentForms
	if len(forms) == 0 {
		forms = a.config.Anki.Forms
	}

	report, err := anki.Augment(pkg, a.engine, anki.Options{
		Field:  field,
		Forms:  forms,
		Romaji: ankiAugmentRomaji,
	})
	if err != nil {
		return err
	}

	out := ankiAugmentOutput
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + ".katsuyou.apkg"
	}
	if err := pkg.SaveAs(out); err != nil {
		return fmt.Errorf("writing package: %w", err)
	}

	for _, s := range report.Skipped {
		a.logger.Info("skipped note", "note", s.NoteID, "value", s.Value, "reason", s.Reason)
	}
	fmt.Fprintf(os.Stderr, "Augmented %d notes, skipped %d\n", report.Augmented, len(report.Skipped))
	fmt.Println(out)
	return nil
}

func hasField(pkg *anki.Package, name string) bool {
	if name == "" {
		return false
	}
	for _, m := range pkg.Models {
		if _, ok := m.FieldIndex(name); ok {
			return true
		}
	}
	return false
}
