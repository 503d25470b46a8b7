// Package render formats conjugation results for the terminal.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/katsuyou/internal/verb"
)

// Output formats.
const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatTable, FormatMarkdown, FormatJSON}

// Item is one verb to render together with its lexicon gloss.
type Item struct {
	Result  verb.Result `json:"result"`
	Meaning string      `json:"meaning,omitempty"`
	JLPT    string      `json:"jlpt,omitempty"`
}

// Options control what the renderer prints.
type Options struct {
	Romaji bool
	Color  bool
}

// Renderer handles output formatting.
type Renderer struct {
	opts     Options
	heading  *color.Color
	category *color.Color
	dim      *color.Color
	bad      *color.Color
	markdown *template.Template
}

// New creates a renderer.
func New(opts Options) *Renderer {
	r := &Renderer{
		opts:     opts,
		heading:  color.New(color.FgHiMagenta, color.Bold),
		category: color.New(color.FgCyan, color.Bold),
		dim:      color.New(color.FgHiBlack),
		bad:      color.New(color.FgRed),
	}
	if !opts.Color {
		for _, c := range []*color.Color{r.heading, r.category, r.dim, r.bad} {
			c.DisableColor()
		}
	}
	r.markdown = template.Must(template.New("markdown").Funcs(template.FuncMap{
		"title":  func(c verb.Category) string { return c.Title() },
		"romaji": func() bool { return r.opts.Romaji },
	}).Parse(markdownTemplate))
	return r
}

// Render formats items in the named format.
func (r *Renderer) Render(format string, items []Item) (string, error) {
	switch format {
	case "", FormatTable:
		parts := make([]string, len(items))
		for i, it := range items {
			parts[i] = r.Table(it)
		}
		return strings.Join(parts, "\n"), nil
	case FormatMarkdown:
		var b strings.Builder
		for i, it := range items {
			if i > 0 {
				b.WriteString("\n")
			}
			md, err := r.Markdown(it)
			if err != nil {
				return "", err
			}
			b.WriteString(md)
		}
		return b.String(), nil
	case FormatJSON:
		return JSON(items)
	}
	return "", fmt.Errorf("unknown output format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

// Header returns the one-line summary printed above a table.
func (r *Renderer) Header(it Item) string {
	v := it.Result.Verb
	var b strings.Builder
	b.WriteString(r.heading.Sprint(v.DictionaryForm))
	if v.Reading != "" && v.Reading != v.DictionaryForm {
		fmt.Fprintf(&b, " 【%s】", v.Reading)
	}
	if r.opts.Romaji && v.Romaji != "" {
		fmt.Fprintf(&b, " %s", v.Romaji)
	}
	fmt.Fprintf(&b, "  %s", r.dim.Sprint(v.Label()))
	if it.JLPT != "" {
		fmt.Fprintf(&b, " %s", r.dim.Sprint(it.JLPT))
	}
	if it.Meaning != "" {
		fmt.Fprintf(&b, "\n%s", it.Meaning)
	}
	return b.String()
}

// Table renders one verb as aligned columns grouped by category.
func (r *Renderer) Table(it Item) string {
	var b strings.Builder
	b.WriteString(r.Header(it))
	b.WriteString("\n")

	groups := it.Result.ByCategory()
	nameW, kanjiW, kanaW := 0, 0, 0
	for _, f := range it.Result.Forms {
		nameW = max(nameW, runewidth.StringWidth(f.Name))
		kanjiW = max(kanjiW, runewidth.StringWidth(f.Kanji))
		kanaW = max(kanaW, runewidth.StringWidth(f.Hiragana))
	}

	for _, g := range groups {
		b.WriteString("\n")
		b.WriteString(r.category.Sprint(g.Category.Title()))
		b.WriteString("\n")
		for _, f := range g.Forms {
			b.WriteString("  ")
			b.WriteString(runewidth.FillRight(f.Name, nameW))
			b.WriteString("  ")
			b.WriteString(runewidth.FillRight(f.Kanji, kanjiW))
			b.WriteString("  ")
			if r.opts.Romaji {
				b.WriteString(runewidth.FillRight(f.Hiragana, kanaW))
				b.WriteString("  ")
				b.WriteString(r.dim.Sprint(f.Romaji))
			} else {
				b.WriteString(f.Hiragana)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Markdown renders one verb as a markdown document with one table per category.
func (r *Renderer) Markdown(it Item) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Item
		Groups []verb.CategoryForms
	}{Item: it, Groups: it.Result.ByCategory()}

	if err := r.markdown.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing markdown template: %w", err)
	}
	return buf.String(), nil
}

const markdownTemplate = `## {{.Result.Verb.DictionaryForm}}{{if .Result.Verb.Reading}} ({{.Result.Verb.Reading}}){{end}}

- Type: {{.Result.Verb.Label}}
{{- if .Meaning}}
- Meaning: {{.Meaning}}
{{- end}}
{{- if .JLPT}}
- JLPT: {{.JLPT}}
{{- end}}
{{range .Groups}}
### {{title .Category}}

| Form | Kanji | Hiragana |{{if romaji}} Romaji |{{end}}
|---|---|---|{{if romaji}}---|{{end}}
{{range .Forms}}| {{.Name}} | {{.Kanji}} | {{.Hiragana}} |{{if romaji}} {{.Romaji}} |{{end}}
{{end}}{{end}}`

// JSON renders items as an indented JSON array.
func JSON(items []Item) (string, error) {
	if items == nil {
		items = []Item{}
	}
	out, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling results: %w", err)
	}
	return string(out) + "\n", nil
}

// VerbInfo renders a classification verdict as aligned key/value lines.
func (r *Renderer) VerbInfo(v verb.VerbInfo) string {
	rows := [][2]string{
		{"verb", v.DictionaryForm},
		{"type", v.Label()},
		{"stem", v.Stem},
		{"ending", v.Ending},
	}
	if v.CompoundPrefix != "" {
		rows = append(rows, [2]string{"prefix", v.CompoundPrefix})
	}
	reading := v.Reading
	if reading == "" {
		reading = r.dim.Sprint("(unknown)")
	}
	rows = append(rows, [2]string{"reading", reading})
	if r.opts.Romaji && v.Romaji != "" {
		rows = append(rows, [2]string{"romaji", v.Romaji})
	}

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%s %s\n", r.dim.Sprint(runewidth.FillRight(row[0]+":", 9)), row[1])
	}
	return b.String()
}

// History renders recent queries newest first.
func (r *Renderer) History(entries []verb.HistoryEntry) string {
	if len(entries) == 0 {
		return "No history yet\n"
	}

	verbW := 0
	for _, e := range entries {
		verbW = max(verbW, runewidth.StringWidth(e.Verb))
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s  %s  %s  %s\n",
			r.dim.Sprint(e.ID),
			r.dim.Sprint(e.Timestamp.Local().Format("2006-01-02 15:04")),
			runewidth.FillRight(e.Verb, verbW),
			e.VerbType,
		)
	}
	return b.String()
}

// Error formats err for the terminal.
func (r *Renderer) Error(err error) string {
	return r.bad.Sprint(ErrorMessage(err))
}

// ErrorMessage turns an engine error into a sentence for the user.
// Errors without a code are returned as-is.
func ErrorMessage(err error) string {
	var ce *verb.ConjugationError
	if !errors.As(err, &ce) {
		return err.Error()
	}

	switch ce.Code {
	case verb.CodeEmptyInput:
		return "Please enter a verb."
	case verb.CodeInvalidCharacters:
		return "Only hiragana, katakana and kanji are accepted (" + ce.Message + ")."
	case verb.CodeUnknownVerb:
		return "Not a recognized dictionary-form verb: " + ce.Message + "."
	case verb.CodeAmbiguousVerb:
		return "Ambiguous verb: " + ce.Message + "."
	case verb.CodeConjugationFailed:
		return "Could not conjugate: " + ce.Message + "."
	}
	return ce.Error()
}
