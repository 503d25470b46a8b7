package rules

import "github.com/f3rmion/katsuyou/internal/verb"

// Row is one hand-written irregular form.
//
// A row either replaces the verb's stem (Stem + Suffix, e.g. こ + ない for
// 来る), attaches a suffix to the verb's own stem (Stem empty), or is a
// suppletive word that replaces stem and ending entirely (Whole).
type Row struct {
	Stem   string // kana stem replacing the verb's stem
	Suffix string

	Whole      string // suppletive kana surface, e.g. できる
	WholeKanji string // kanji spelling of Whole, if any
}

// Table lists the irregular rows of one subtype.
type Table struct {
	Type verb.IrregularType

	// Derived tables fall back to godan rules for keys without a row.
	Derived bool
	Rows    map[string]Row
}

// Row returns the row for key.
func (t *Table) Row(key string) (Row, bool) {
	r, ok := t.Rows[key]
	return r, ok
}

func stem(s, suffix string) Row { return Row{Stem: s, Suffix: suffix} }
func suffix(s string) Row       { return Row{Suffix: s} }
func whole(kana, kanji string) Row {
	return Row{Whole: kana, WholeKanji: kanji}
}

var respectfulMovement = map[string]Row{
	"respectful":        whole("いらっしゃる", ""),
	"respectful-polite": whole("いらっしゃいます", ""),
	"humble":            whole("まいる", "参る"),
	"humble-polite":     whole("まいります", "参ります"),
}

func withRows(base map[string]Row, extra map[string]Row) map[string]Row {
	out := make(map[string]Row, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// Irregular holds the tables for every irregular subtype.
var Irregular = map[verb.IrregularType]*Table{
	verb.Suru: {
		Type: verb.Suru,
		Rows: map[string]Row{
			"dictionary":        stem("す", "る"),
			"te":                stem("し", "て"),
			"masu":              stem("し", "ます"),
			"mashite":           stem("し", "まして"),
			"nai":               stem("し", "ない"),
			"masen":             stem("し", "ません"),
			"ta":                stem("し", "た"),
			"mashita":           stem("し", "ました"),
			"nakatta":           stem("し", "なかった"),
			"masen-deshita":     stem("し", "ませんでした"),
			"volitional":        stem("し", "よう"),
			"mashou":            stem("し", "ましょう"),
			"potential":         whole("できる", ""),
			"passive":           stem("さ", "れる"),
			"causative":         stem("さ", "せる"),
			"causative-passive": stem("さ", "せられる"),
			"imperative":        stem("し", "ろ"),
			"te-kudasai":        stem("し", "てください"),
			"ba":                stem("す", "れば"),
			"tara":              stem("し", "たら"),
			"tai":               stem("し", "たい"),
			"takunai":           stem("し", "たくない"),
			"teiru":             stem("し", "ている"),
			"teimasu":           stem("し", "ています"),
			"respectful":        whole("なさる", ""),
			"respectful-polite": whole("なさいます", ""),
			"humble":            whole("いたす", "致す"),
			"humble-polite":     whole("いたします", "致します"),
		},
	},

	verb.Kuru: {
		Type: verb.Kuru,
		Rows: withRows(map[string]Row{
			"dictionary":        stem("く", "る"),
			"te":                stem("き", "て"),
			"masu":              stem("き", "ます"),
			"mashite":           stem("き", "まして"),
			"nai":               stem("こ", "ない"),
			"masen":             stem("き", "ません"),
			"ta":                stem("き", "た"),
			"mashita":           stem("き", "ました"),
			"nakatta":           stem("こ", "なかった"),
			"masen-deshita":     stem("き", "ませんでした"),
			"volitional":        stem("こ", "よう"),
			"mashou":            stem("き", "ましょう"),
			"potential":         stem("こ", "られる"),
			"colloquial":        stem("こ", "れる"),
			"passive":           stem("こ", "られる"),
			"causative":         stem("こ", "させる"),
			"causative-passive": stem("こ", "させられる"),
			"imperative":        stem("こ", "い"),
			"te-kudasai":        stem("き", "てください"),
			"ba":                stem("く", "れば"),
			"tara":              stem("き", "たら"),
			"tai":               stem("き", "たい"),
			"takunai":           stem("き", "たくない"),
			"teiru":             stem("き", "ている"),
			"teimasu":           stem("き", "ています"),
		}, respectfulMovement),
	},

	// ある follows godan rules apart from its suppletive negative.
	verb.Aru: {
		Type:    verb.Aru,
		Derived: true,
		Rows: map[string]Row{
			"nai":       whole("ない", ""),
			"nakatta":   whole("なかった", ""),
			"potential": whole("ありうる", "あり得る"),
			"formal":    whole("ございます", ""),
		},
	},

	// 行く is godan except that its te/ta stem is 行っ, not 行い.
	verb.Iku: {
		Type:    verb.Iku,
		Derived: true,
		Rows: withRows(map[string]Row{
			"te":         suffix("って"),
			"ta":         suffix("った"),
			"te-kudasai": suffix("ってください"),
			"tara":       suffix("ったら"),
			"teiru":      suffix("っている"),
			"teimasu":    suffix("っています"),
		}, respectfulMovement),
	},

	// Honorific verbs take -い instead of -り before ます and in the imperative.
	verb.Honorific: {
		Type:    verb.Honorific,
		Derived: true,
		Rows: map[string]Row{
			"masu":              suffix("います"),
			"mashite":           suffix("いまして"),
			"masen":             suffix("いません"),
			"mashita":           suffix("いました"),
			"masen-deshita":     suffix("いませんでした"),
			"mashou":            suffix("いましょう"),
			"imperative":        suffix("い"),
			"respectful-polite": suffix("います"),
		},
	},
}

// IrregularTable returns the table for subtype t.
func IrregularTable(t verb.IrregularType) (*Table, bool) {
	tbl, ok := Irregular[t]
	return tbl, ok
}
