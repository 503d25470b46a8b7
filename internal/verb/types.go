// Package verb provides the core types for Japanese verb classification and conjugation.
package verb

import "time"

// VerbType is the conjugation class of a verb.
type VerbType string

const (
	Godan     VerbType = "godan"     // u-verbs, five vowel grades
	Ichidan   VerbType = "ichidan"   // ru-verbs, stem + suffix
	Irregular VerbType = "irregular" // する, 来る and the partial irregulars
)

// IrregularType narrows an irregular verb to its conjugation table.
type IrregularType string

const (
	Suru      IrregularType = "suru"      // する and noun+する compounds
	Kuru      IrregularType = "kuru"      // 来る, reading shifts between く/き/こ
	Aru       IrregularType = "aru"       // ある, negative is ない
	Iku       IrregularType = "iku"       // 行く, te/ta-form is 行って/行った
	Honorific IrregularType = "honorific" // くださる, なさる, いらっしゃる, おっしゃる, ござる
)

// Valid reports whether t is a known verb type.
func (t VerbType) Valid() bool {
	switch t {
	case Godan, Ichidan, Irregular:
		return true
	}
	return false
}

// Valid reports whether t is a known irregular subtype.
func (t IrregularType) Valid() bool {
	switch t {
	case Suru, Kuru, Aru, Iku, Honorific:
		return true
	}
	return false
}

// VerbInfo is the result of classifying a dictionary-form verb.
//
// CompoundPrefix + Stem + Ending always equals DictionaryForm, and
// Irregular is set exactly when Type is Irregular.
type VerbInfo struct {
	DictionaryForm string        `json:"dictionary_form" yaml:"dictionary_form"`
	Reading        string        `json:"reading" yaml:"reading"` // hiragana, empty if unresolved
	Romaji         string        `json:"romaji" yaml:"romaji"`
	Type           VerbType      `json:"type" yaml:"type"`
	Irregular      IrregularType `json:"irregular_type,omitempty" yaml:"irregular_type,omitempty"`
	Stem           string        `json:"stem" yaml:"stem"`
	Ending         string        `json:"ending" yaml:"ending"`
	CompoundPrefix string        `json:"compound_prefix,omitempty" yaml:"compound_prefix,omitempty"`

	// CompoundPrefixReading is the kana reading of CompoundPrefix.
	CompoundPrefixReading string `json:"compound_prefix_reading,omitempty" yaml:"compound_prefix_reading,omitempty"`
}

// HasReading reports whether a kana reading was resolved for the verb.
func (v VerbInfo) HasReading() bool {
	return v.Reading != ""
}

// StemReading returns the kana spelling of Stem.
// It is empty when the verb has no reading.
func (v VerbInfo) StemReading() string {
	if v.Reading == "" {
		return ""
	}
	r := []rune(v.Reading)
	drop := len([]rune(v.CompoundPrefixReading))
	end := len(r) - len([]rune(v.Ending))
	if drop > end || end < 0 {
		return ""
	}
	return string(r[drop:end])
}

// Label returns the type with its irregular subtype, e.g. "irregular (suru)".
func (v VerbInfo) Label() string {
	if v.Type == Irregular && v.Irregular != "" {
		return string(v.Type) + " (" + string(v.Irregular) + ")"
	}
	return string(v.Type)
}

// Category groups conjugated forms for display.
type Category string

const (
	CategoryBasic            Category = "basic"
	CategoryPolite           Category = "polite"
	CategoryNegative         Category = "negative"
	CategoryPast             Category = "past"
	CategoryVolitional       Category = "volitional"
	CategoryPotential        Category = "potential"
	CategoryPassive          Category = "passive"
	CategoryCausative        Category = "causative"
	CategoryCausativePassive Category = "causative-passive"
	CategoryImperative       Category = "imperative"
	CategoryConditional      Category = "conditional"
	CategoryTai              Category = "tai-form"
	CategoryProgressive      Category = "progressive"
	CategoryHonorific        Category = "honorific"
)

var categoryOrder = []Category{
	CategoryBasic,
	CategoryPolite,
	CategoryNegative,
	CategoryPast,
	CategoryVolitional,
	CategoryPotential,
	CategoryPassive,
	CategoryCausative,
	CategoryCausativePassive,
	CategoryImperative,
	CategoryConditional,
	CategoryTai,
	CategoryProgressive,
	CategoryHonorific,
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Index returns the display position of c, or -1 if c is unknown.
func (c Category) Index() int {
	for i, cat := range categoryOrder {
		if cat == c {
			return i
		}
	}
	return -1
}

// Title returns a human label for the category.
func (c Category) Title() string {
	switch c {
	case CategoryBasic:
		return "Basic"
	case CategoryPolite:
		return "Polite"
	case CategoryNegative:
		return "Negative"
	case CategoryPast:
		return "Past"
	case CategoryVolitional:
		return "Volitional"
	case CategoryPotential:
		return "Potential"
	case CategoryPassive:
		return "Passive"
	case CategoryCausative:
		return "Causative"
	case CategoryCausativePassive:
		return "Causative-passive"
	case CategoryImperative:
		return "Imperative"
	case CategoryConditional:
		return "Conditional"
	case CategoryTai:
		return "Tai-form"
	case CategoryProgressive:
		return "Progressive"
	case CategoryHonorific:
		return "Honorific"
	default:
		return string(c)
	}
}

// Formality marks plain or polite speech level.
type Formality string

const (
	Plain  Formality = "plain"
	Polite Formality = "polite"
)

// Form is one generated row of a conjugation table.
type Form struct {
	ID        string    `json:"id" yaml:"id"` // "<category>/<key>"
	Category  Category  `json:"category" yaml:"category"`
	Name      string    `json:"name" yaml:"name"`
	Kanji     string    `json:"kanji" yaml:"kanji"`
	Hiragana  string    `json:"hiragana" yaml:"hiragana"`
	Romaji    string    `json:"romaji" yaml:"romaji"`
	Formality Formality `json:"formality,omitempty" yaml:"formality,omitempty"`
}

// Result is a classified verb together with its full form list.
type Result struct {
	Verb  VerbInfo `json:"verb" yaml:"verb"`
	Forms []Form   `json:"forms" yaml:"forms"`
}

// CategoryForms is one category and the forms generated for it.
type CategoryForms struct {
	Category Category
	Forms    []Form
}

// ByCategory groups forms by category, keeping the order of Forms.
func (r Result) ByCategory() []CategoryForms {
	var groups []CategoryForms
	for _, f := range r.Forms {
		n := len(groups)
		if n > 0 && groups[n-1].Category == f.Category {
			groups[n-1].Forms = append(groups[n-1].Forms, f)
			continue
		}
		groups = append(groups, CategoryForms{Category: f.Category, Forms: []Form{f}})
	}
	return groups
}

// Form returns the form with the given ID.
func (r Result) Form(id string) (Form, bool) {
	for _, f := range r.Forms {
		if f.ID == id {
			return f, true
		}
	}
	return Form{}, false
}

// Filter returns a copy of r containing only forms in the given categories.
// An empty list keeps everything.
func (r Result) Filter(categories ...Category) Result {
	if len(categories) == 0 {
		return r
	}
	keep := make(map[Category]bool, len(categories))
	for _, c := range categories {
		keep[c] = true
	}
	out := Result{Verb: r.Verb}
	for _, f := range r.Forms {
		if keep[f.Category] {
			out.Forms = append(out.Forms, f)
		}
	}
	return out
}

// HistoryEntry records one successful query.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Verb      string    `json:"verb"`
	VerbType  string    `json:"verb_type"`
	Timestamp time.Time `json:"timestamp"`
}
