// Package rules holds the declarative conjugation tables.
//
// Regular verbs are conjugated from two independent tables: the godan
// vowel-grade and sound-change tables pick the stem allomorph, and the
// form table picks the suffix attached to it. Irregular verbs are
// described by hand-written rows keyed by the same form keys.
package rules

import "github.com/f3rmion/katsuyou/internal/verb"

// Grade selects which allomorph of the stem a suffix attaches to.
type Grade int

const (
	GradeU  Grade = iota // dictionary ending (godan) / る (ichidan)
	GradeA               // 書か-
	GradeI               // 書き- (masu stem)
	GradeE               // 書け-
	GradeO               // 書こ-
	GradeTe              // 書いて / 食べて
	GradeTa              // 書いた / 食べた
)

// Piece is a stem grade plus the suffix written after it.
type Piece struct {
	Grade  Grade
	Suffix string
}

// FormRule describes one row of the conjugation table.
// A nil Godan or Ichidan piece means the form does not exist for that class.
type FormRule struct {
	Key       string
	Category  verb.Category
	Name      string
	Formality verb.Formality
	Godan     *Piece
	Ichidan   *Piece
}

// ID returns the stable identifier "<category>/<key>".
func (r FormRule) ID() string {
	return string(r.Category) + "/" + r.Key
}

func p(g Grade, suffix string) *Piece {
	return &Piece{Grade: g, Suffix: suffix}
}

// Forms is the master form table in display order: categories follow
// verb.Categories() and rows within a category keep this order.
var Forms = []FormRule{
	{Key: "dictionary", Category: verb.CategoryBasic, Name: "Dictionary form", Formality: verb.Plain,
		Godan: p(GradeU, ""), Ichidan: p(GradeU, "")},
	{Key: "te", Category: verb.CategoryBasic, Name: "Te-form",
		Godan: p(GradeTe, ""), Ichidan: p(GradeTe, "")},

	{Key: "masu", Category: verb.CategoryPolite, Name: "Masu-form", Formality: verb.Polite,
		Godan: p(GradeI, "ます"), Ichidan: p(GradeI, "ます")},
	{Key: "mashite", Category: verb.CategoryPolite, Name: "Polite te-form", Formality: verb.Polite,
		Godan: p(GradeI, "まして"), Ichidan: p(GradeI, "まして")},

	{Key: "nai", Category: verb.CategoryNegative, Name: "Negative", Formality: verb.Plain,
		Godan: p(GradeA, "ない"), Ichidan: p(GradeI, "ない")},
	{Key: "masen", Category: verb.CategoryNegative, Name: "Polite negative", Formality: verb.Polite,
		Godan: p(GradeI, "ません"), Ichidan: p(GradeI, "ません")},

	{Key: "ta", Category: verb.CategoryPast, Name: "Past", Formality: verb.Plain,
		Godan: p(GradeTa, ""), Ichidan: p(GradeTa, "")},
	{Key: "mashita", Category: verb.CategoryPast, Name: "Polite past", Formality: verb.Polite,
		Godan: p(GradeI, "ました"), Ichidan: p(GradeI, "ました")},
	{Key: "nakatta", Category: verb.CategoryPast, Name: "Past negative", Formality: verb.Plain,
		Godan: p(GradeA, "なかった"), Ichidan: p(GradeI, "なかった")},
	{Key: "masen-deshita", Category: verb.CategoryPast, Name: "Polite past negative", Formality: verb.Polite,
		Godan: p(GradeI, "ませんでした"), Ichidan: p(GradeI, "ませんでした")},

	{Key: "volitional", Category: verb.CategoryVolitional, Name: "Volitional", Formality: verb.Plain,
		Godan: p(GradeO, "う"), Ichidan: p(GradeI, "よう")},
	{Key: "mashou", Category: verb.CategoryVolitional, Name: "Polite volitional", Formality: verb.Polite,
		Godan: p(GradeI, "ましょう"), Ichidan: p(GradeI, "ましょう")},

	{Key: "potential", Category: verb.CategoryPotential, Name: "Potential", Formality: verb.Plain,
		Godan: p(GradeE, "る"), Ichidan: p(GradeI, "られる")},
	{Key: "colloquial", Category: verb.CategoryPotential, Name: "Potential (colloquial)", Formality: verb.Plain,
		Ichidan: p(GradeI, "れる")},

	{Key: "passive", Category: verb.CategoryPassive, Name: "Passive", Formality: verb.Plain,
		Godan: p(GradeA, "れる"), Ichidan: p(GradeI, "られる")},

	{Key: "causative", Category: verb.CategoryCausative, Name: "Causative", Formality: verb.Plain,
		Godan: p(GradeA, "せる"), Ichidan: p(GradeI, "させる")},

	{Key: "causative-passive", Category: verb.CategoryCausativePassive, Name: "Causative-passive", Formality: verb.Plain,
		Godan: p(GradeA, "せられる"), Ichidan: p(GradeI, "させられる")},

	{Key: "imperative", Category: verb.CategoryImperative, Name: "Imperative", Formality: verb.Plain,
		Godan: p(GradeE, ""), Ichidan: p(GradeI, "ろ")},
	{Key: "te-kudasai", Category: verb.CategoryImperative, Name: "Request (te-kudasai)", Formality: verb.Polite,
		Godan: p(GradeTe, "ください"), Ichidan: p(GradeTe, "ください")},

	{Key: "ba", Category: verb.CategoryConditional, Name: "Conditional (ba)", Formality: verb.Plain,
		Godan: p(GradeE, "ば"), Ichidan: p(GradeI, "れば")},
	{Key: "tara", Category: verb.CategoryConditional, Name: "Conditional (tara)", Formality: verb.Plain,
		Godan: p(GradeTa, "ら"), Ichidan: p(GradeTa, "ら")},

	{Key: "tai", Category: verb.CategoryTai, Name: "Tai-form", Formality: verb.Plain,
		Godan: p(GradeI, "たい"), Ichidan: p(GradeI, "たい")},
	{Key: "takunai", Category: verb.CategoryTai, Name: "Tai-form negative", Formality: verb.Plain,
		Godan: p(GradeI, "たくない"), Ichidan: p(GradeI, "たくない")},

	{Key: "teiru", Category: verb.CategoryProgressive, Name: "Progressive", Formality: verb.Plain,
		Godan: p(GradeTe, "いる"), Ichidan: p(GradeTe, "いる")},
	{Key: "teimasu", Category: verb.CategoryProgressive, Name: "Polite progressive", Formality: verb.Polite,
		Godan: p(GradeTe, "います"), Ichidan: p(GradeTe, "います")},

	// Honorific rows exist only in irregular tables.
	{Key: "respectful", Category: verb.CategoryHonorific, Name: "Respectful (sonkeigo)", Formality: verb.Plain},
	{Key: "respectful-polite", Category: verb.CategoryHonorific, Name: "Respectful polite", Formality: verb.Polite},
	{Key: "humble", Category: verb.CategoryHonorific, Name: "Humble (kenjougo)", Formality: verb.Plain},
	{Key: "humble-polite", Category: verb.CategoryHonorific, Name: "Humble polite", Formality: verb.Polite},
	{Key: "formal", Category: verb.CategoryHonorific, Name: "Formal polite (gozaimasu)", Formality: verb.Polite},
}

// Rule returns the form rule with the given key.
func Rule(key string) (FormRule, bool) {
	for _, r := range Forms {
		if r.Key == key {
			return r, true
		}
	}
	return FormRule{}, false
}

// For returns the piece a regular verb type uses for r.
func (r FormRule) For(t verb.VerbType) *Piece {
	switch t {
	case verb.Godan:
		return r.Godan
	case verb.Ichidan:
		return r.Ichidan
	}
	return nil
}

// Lookup resolves the stem piece or irregular row used for key by a verb
// of type t (and subtype irr for irregular verbs). Exactly one of piece
// and row is set when ok is true.
func Lookup(t verb.VerbType, irr verb.IrregularType, key string) (piece *Piece, row *Row, ok bool) {
	rule, found := Rule(key)
	if !found {
		return nil, nil, false
	}
	if t != verb.Irregular {
		piece = rule.For(t)
		return piece, nil, piece != nil
	}

	tbl, found := IrregularTable(irr)
	if !found {
		return nil, nil, false
	}
	if r, found := tbl.Row(key); found {
		return nil, &r, true
	}
	if tbl.Derived && rule.Godan != nil {
		return rule.Godan, nil, true
	}
	return nil, nil, false
}
