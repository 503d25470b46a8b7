// Package conjugate generates the conjugation table of a classified verb.
package conjugate

import (
	"github.com/f3rmion/katsuyou/internal/kana"
	"github.com/f3rmion/katsuyou/internal/rules"
	"github.com/f3rmion/katsuyou/internal/verb"
)

// Conjugate returns every form of v in display order: categories in
// verb.Categories() order, rows within a category in table order.
//
// Godan and ichidan verbs never produce honorific rows. Irregular verbs
// produce the rows of their subtype table. Either the whole table is
// returned or an error, never a partial list.
func Conjugate(v verb.VerbInfo) ([]verb.Form, error) {
	if err := check(v); err != nil {
		return nil, err
	}

	forms := make([]verb.Form, 0, len(rules.Forms))
	for _, rule := range rules.Forms {
		piece, row, ok := rules.Lookup(v.Type, v.Irregular, rule.Key)
		if !ok {
			continue
		}

		var kanji, hira string
		var err error
		if row != nil {
			kanji, hira = renderRow(v, *row)
		} else {
			kanji, hira, err = renderPiece(v, *piece)
			if err != nil {
				return nil, err
			}
		}
		forms = append(forms, newForm(v, rule, kanji, hira))
	}

	if len(forms) == 0 {
		return nil, verb.NewError(verb.CodeConjugationFailed, "no forms for %s", v.DictionaryForm)
	}
	return forms, nil
}

func check(v verb.VerbInfo) error {
	switch v.Type {
	case verb.Godan, verb.Ichidan:
		if v.Irregular != "" {
			return verb.NewError(verb.CodeConjugationFailed, "%s verb with irregular subtype %q", v.Type, v.Irregular)
		}
	case verb.Irregular:
		if _, ok := rules.IrregularTable(v.Irregular); !ok {
			return verb.NewError(verb.CodeConjugationFailed, "unsupported irregular subtype %q", v.Irregular)
		}
	default:
		return verb.NewError(verb.CodeConjugationFailed, "unsupported verb type %q", v.Type)
	}

	if v.CompoundPrefix+v.Stem+v.Ending != v.DictionaryForm {
		return verb.NewError(verb.CodeConjugationFailed,
			"%s does not split into %q + %q + %q", v.DictionaryForm, v.CompoundPrefix, v.Stem, v.Ending)
	}
	if v.Type == verb.Ichidan && v.Ending != "る" {
		return verb.NewError(verb.CodeConjugationFailed, "ichidan verb %s does not end in る", v.DictionaryForm)
	}
	return nil
}

// renderPiece attaches a regular stem piece to the verb's stem.
func renderPiece(v verb.VerbInfo, p rules.Piece) (kanji, hira string, err error) {
	var tail string
	switch v.Type {
	case verb.Ichidan:
		tail = rules.IchidanStem(p.Grade)
	default:
		// Godan, and the godan-derived irregular subtypes.
		var ok bool
		tail, ok = rules.GodanStem(v.Ending, p.Grade)
		if !ok {
			return "", "", verb.NewError(verb.CodeConjugationFailed, "%s has no godan ending", v.DictionaryForm)
		}
	}

	kanji = v.CompoundPrefix + v.Stem + tail + p.Suffix
	if v.HasReading() {
		hira = v.CompoundPrefixReading + v.StemReading() + tail + p.Suffix
	}
	return kanji, hira, nil
}

// renderRow writes out a hand-written irregular row.
func renderRow(v verb.VerbInfo, r rules.Row) (kanji, hira string) {
	switch {
	case r.Whole != "":
		written := r.Whole
		if r.WholeKanji != "" {
			written = r.WholeKanji
		}
		kanji = v.CompoundPrefix + written
		hira = v.CompoundPrefixReading + r.Whole

	case r.Stem != "":
		// 来 keeps its kanji while the reading moves between こ, き and く.
		written := r.Stem
		if kana.ContainsKanji(v.Stem) {
			written = v.Stem
		}
		kanji = v.CompoundPrefix + written + r.Suffix
		hira = v.CompoundPrefixReading + r.Stem + r.Suffix

	default:
		kanji = v.CompoundPrefix + v.Stem + r.Suffix
		hira = v.CompoundPrefixReading + v.StemReading() + r.Suffix
	}

	if !v.HasReading() {
		hira = ""
	}
	return kanji, hira
}

func newForm(v verb.VerbInfo, rule rules.FormRule, kanji, hira string) verb.Form {
	f := verb.Form{
		ID:        rule.ID(),
		Category:  rule.Category,
		Name:      rule.Name,
		Kanji:     kanji,
		Hiragana:  hira,
		Formality: rule.Formality,
	}
	if hira == "" {
		// Without a reading the written form is the best kana we have.
		f.Hiragana = kanji
		if !kana.AllKana(kanji) {
			return f
		}
		f.Hiragana = kana.ToHiragana(kanji)
	}
	f.Romaji = kana.ToRomaji(f.Hiragana)
	return f
}
