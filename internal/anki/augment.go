package anki

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/f3rmion/katsuyou/internal/verb"
)

// FieldPrefix marks the fields added to augmented notes.
const FieldPrefix = "Katsuyou_"

// Conjugator produces the conjugation table of a verb.
type Conjugator interface {
	Conjugate(input string) (verb.Result, error)
}

// Options select the verb field and the forms written to each note.
type Options struct {
	Field  string   // note field holding the dictionary form
	Forms  []string // form IDs, e.g. "polite/masu"
	Romaji bool     // append romaji to each value
}

// Skip records a note that could not be augmented.
type Skip struct {
	NoteID int64
	Value  string
	Reason string
}

// Report summarizes an Augment run.
type Report struct {
	Augmented int
	Skipped   []Skip
}

// FieldName returns the note field used for a form ID.
func FieldName(formID string) string {
	return FieldPrefix + strings.ReplaceAll(formID, "/", "_")
}

// Augment adds one field per form to every note type carrying opts.Field
// and fills it for each note whose verb conjugates.
func Augment(p *Package, c Conjugator, opts Options) (Report, error) {
	if len(opts.Forms) == 0 {
		return Report{}, fmt.Errorf("no forms selected")
	}

	fields := make([]string, len(opts.Forms))
	for i, id := range opts.Forms {
		fields[i] = FieldName(id)
	}

	matched := false
	for id, model := range p.Models {
		if _, ok := model.FieldIndex(opts.Field); !ok {
			continue
		}
		matched = true
		if err := p.AddFields(id, fields); err != nil {
			return Report{}, err
		}
	}
	if !matched {
		return Report{}, fmt.Errorf("no note type has a %q field", opts.Field)
	}

	var report Report
	for _, note := range p.Notes {
		model := p.Model(note)
		if model == nil {
			continue
		}
		if _, ok := model.FieldIndex(opts.Field); !ok {
			continue
		}

		raw := p.FieldValue(note, opts.Field)
		word := CleanVerb(raw)
		res, err := c.Conjugate(word)
		if err != nil {
			report.Skipped = append(report.Skipped, Skip{NoteID: note.ID, Value: raw, Reason: err.Error()})
			continue
		}

		for i, id := range opts.Forms {
			if err := p.SetField(note, fields[i], formValue(res, id, opts.Romaji)); err != nil {
				return report, err
			}
		}
		report.Augmented++
	}
	return report, nil
}

func formValue(res verb.Result, id string, romaji bool) string {
	f, ok := res.Form(id)
	if !ok {
		return ""
	}
	v := f.Kanji
	if f.Hiragana != "" && f.Hiragana != f.Kanji {
		v += "【" + f.Hiragana + "】"
	}
	if romaji && f.Romaji != "" {
		v += " " + f.Romaji
	}
	return v
}

var (
	tagPattern = regexp.MustCompile(`<[^>]*>`)
	// Text after these starts a gloss or a reading: 食べる (たべる), 見る、観る.
	verbCut = regexp.MustCompile(`[\s　,;/、，；（(【\[]`)
)

// StripHTML drops tags and entities from a field value.
func StripHTML(s string) string {
	return strings.TrimSpace(html.UnescapeString(tagPattern.ReplaceAllString(s, " ")))
}

// CleanVerb extracts the dictionary form from a note field that may carry
// markup, a reading or alternative spellings.
func CleanVerb(field string) string {
	s := StripHTML(field)
	if loc := verbCut.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	return strings.TrimSpace(s)
}

// DetectField returns the field whose cleaned values most often satisfy
// isVerb, or "" when no value does.
func DetectField(p *Package, isVerb func(string) bool) string {
	counts := make(map[string]int)
	for _, note := range p.Notes {
		model := p.Model(note)
		if model == nil {
			continue
		}
		for i, f := range model.Fields {
			if i < len(note.Fields) && isVerb(CleanVerb(note.Fields[i])) {
				counts[f.Name]++
			}
		}
	}

	best, bestN := "", 0
	for name, n := range counts {
		if n > bestN || n == bestN && name < best {
			best, bestN = name, n
		}
	}
	return best
}
